package auth

import (
	"context"
	"log/slog"
)

// LinkStore records which provider identities belong to which explorer.
type LinkStore interface {
	SaveLink(ctx context.Context, link Link) (int, error)
	LinkedExplorer(ctx context.Context, provider, providerUserID string) (int, error)
}

type Service struct {
	repo   LinkStore
	tokens *TokenIssuer
	states StateStore
	logger *slog.Logger
}

func NewService(repo LinkStore, tokens *TokenIssuer, states StateStore, logger *slog.Logger) *Service {
	logger.Debug("Initializing auth service")

	return &Service{
		repo:   repo,
		tokens: tokens,
		states: states,
		logger: logger,
	}
}

func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

func (s *Service) States() StateStore {
	return s.states
}

// Link records the identity and returns its owning explorer, which differs
// from link.ExplorerID when another sign-in linked it first.
func (s *Service) Link(ctx context.Context, link Link) (int, error) {
	owner, err := s.repo.SaveLink(ctx, link)
	if err != nil {
		return 0, err
	}
	if owner != link.ExplorerID {
		s.logger.Warn("Provider identity already linked",
			"component", "auth_service",
			"operation", "link",
			"provider", link.Provider,
			"explorer_id", link.ExplorerID,
			"owner_id", owner)
	}
	return owner, nil
}

func (s *Service) LinkedExplorer(ctx context.Context, provider, providerUserID string) (int, error) {
	return s.repo.LinkedExplorer(ctx, provider, providerUserID)
}
