package explorer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"oasis-server/internal/shared/config"
	"oasis-server/internal/shared/errors"
)

type Store interface {
	List(ctx context.Context) ([]Explorer, error)
	Create(ctx context.Context, username, email, displayName string, avatarURL *string, role Role) (*Explorer, error)
	FindByEmail(ctx context.Context, email string) (*Explorer, error)
	GetByID(ctx context.Context, id int) (*Explorer, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	UpdateRole(ctx context.Context, id int, role Role) error
}

type Service struct {
	store  Store
	admin  config.AdminConfig
	logger *slog.Logger
}

func NewService(store Store, admin config.AdminConfig, logger *slog.Logger) *Service {
	logger.Debug("Initializing explorer service")

	return &Service{
		store:  store,
		admin:  admin,
		logger: logger,
	}
}

func (s *Service) List(ctx context.Context) ([]Explorer, error) {
	return s.store.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (*Explorer, error) {
	return s.store.GetByID(ctx, id)
}

// FindOrCreateByOAuth returns the explorer owning email, creating one when
// none exists. The configured admin email is promoted to admin either way.
func (s *Service) FindOrCreateByOAuth(ctx context.Context, provider, email, displayName string, avatarURL *string) (*Explorer, error) {
	logger := s.logger.With(
		"component", "explorer_service",
		"operation", "find_or_create_oauth",
		"provider", provider,
		"email", email,
	)
	logger.Debug("Finding or creating explorer by OAuth")

	isAdminEmail := s.admin.Email != "" && strings.EqualFold(email, s.admin.Email)

	e, err := s.store.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, errors.ErrorTypeNotFound) {
		logger.Error("Database error checking for explorer by email", "error", err)
		return nil, err
	}

	if e != nil {
		logger.Info("Found existing explorer by email", "explorer_id", e.ID, "role", e.Role)
		if isAdminEmail && e.Role != RoleAdmin {
			logger.Info("Upgrading existing explorer to admin role", "explorer_id", e.ID)
			if err := s.store.UpdateRole(ctx, e.ID, RoleAdmin); err != nil {
				return nil, err
			}
			e.Role = RoleAdmin
		}
		return e, nil
	}

	role := RoleUser
	username := usernameFromEmail(email)
	if isAdminEmail {
		role = RoleAdmin
		username = s.admin.Username
		displayName = s.admin.DisplayName
	}

	username, err = s.uniqueUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if displayName == "" {
		displayName = username
	}

	e, err = s.store.Create(ctx, username, email, displayName, avatarURL, role)
	if err != nil {
		logger.Error("Failed to create explorer", "error", err)
		return nil, err
	}

	logger.Info("Created explorer via OAuth", "explorer_id", e.ID, "username", e.Username, "role", e.Role)
	return e, nil
}

func (s *Service) uniqueUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := 2; i < 100; i++ {
		taken, err := s.store.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	return "", errors.Conflictf("no free username derived from %q", base)
}

func usernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	clean := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-' {
			return unicode.ToLower(r)
		}
		return -1
	}, local)
	if clean == "" {
		return "explorer"
	}
	return clean
}
