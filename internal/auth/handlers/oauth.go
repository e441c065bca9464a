package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"oasis-server/internal/auth"
	"oasis-server/internal/auth/providers"
	"oasis-server/internal/explorer"
	"oasis-server/internal/shared/cookies"
	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/response"
)

// Explorers is the part of the explorer service the OAuth flow needs.
type Explorers interface {
	GetByID(ctx context.Context, id int) (*explorer.Explorer, error)
	FindOrCreateByOAuth(ctx context.Context, provider, email, displayName string, avatarURL *string) (*explorer.Explorer, error)
}

type OAuthHandler struct {
	provider    providers.OAuthProvider
	explorers   Explorers
	authService *auth.Service
}

func NewOAuthHandler(provider providers.OAuthProvider, explorers Explorers, authService *auth.Service) *OAuthHandler {
	return &OAuthHandler{
		provider:    provider,
		explorers:   explorers,
		authService: authService,
	}
}

func (h *OAuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	logger := slog.With("handler", name+"_oauth_init")

	redirectURI := resolveRedirectURI(r.URL.Query().Get("redirect_uri"))

	state, err := h.authService.States().Generate(r.Context(), name, r.UserAgent(), redirectURI)
	if err != nil {
		response.Error(w, r, logger, errors.WrapInternal("failed to initialize OAuth flow", err))
		return
	}

	http.Redirect(w, r, h.provider.AuthURL(state), http.StatusTemporaryRedirect)
}

func (h *OAuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	name := h.provider.Name()
	query := r.URL.Query()
	code := query.Get("code")
	state := query.Get("state")

	logger := slog.With(
		"handler", name+"_oauth_callback",
		"provider", name,
		"ip", r.RemoteAddr,
		"has_code", code != "",
		"has_state", state != "",
	)

	entry, err := h.authService.States().Consume(r.Context(), state, name)
	if err != nil {
		logger.Warn("OAuth state validation failed", "error", err)
		redirectWithError(w, r, "", "invalid_state")
		return
	}
	if entry.UserAgent != r.UserAgent() {
		logger.Warn("OAuth callback user agent differs from the one that started the flow")
	}
	redirectURI := entry.RedirectURI

	if oauthErr := query.Get("error"); oauthErr != "" {
		logger.Warn("OAuth authorization denied",
			"oauth_error", oauthErr,
			"error_description", query.Get("error_description"))
		redirectWithError(w, r, redirectURI, "oauth_denied")
		return
	}

	if code == "" {
		logger.Error("OAuth callback missing authorization code")
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	token, err := h.provider.ExchangeCode(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", "error", err)
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	userInfo, err := h.provider.UserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to get user info", "error", err)
		redirectWithError(w, r, redirectURI, "oauth_error")
		return
	}

	userLogger := logger.With("user_email", userInfo.Email, "provider_user_id", userInfo.ID)

	if userInfo.Email == "" || !userInfo.EmailVerified {
		userLogger.Error("User missing verified email")
		redirectWithError(w, r, redirectURI, "email_unverified")
		return
	}

	e, err := h.resolveExplorer(ctx, name, userInfo)
	if err != nil {
		userLogger.Error("Failed to resolve explorer account", "error", err)
		redirectWithError(w, r, redirectURI, "database_error")
		return
	}

	explorerLogger := userLogger.With("explorer_id", e.ID)

	jwtToken, err := h.authService.Tokens().Generate(e.ID, e.Username, e.Email, e.Role.String())
	if err != nil {
		explorerLogger.Error("Failed to generate JWT token", "error", err)
		redirectWithError(w, r, redirectURI, "auth_error")
		return
	}

	cookies.SetAuthCookie(w, jwtToken)

	explorerLogger.Info("OAuth authentication successful",
		"explorer_username", e.Username,
		"explorer_role", e.Role)

	http.Redirect(w, r, fmt.Sprintf("%s/auth/callback?success=true", redirectURI), http.StatusTemporaryRedirect)
}

// resolveExplorer follows an existing provider link, or finds the explorer
// by email and links this provider identity to them.
func (h *OAuthHandler) resolveExplorer(ctx context.Context, provider string, user *providers.OAuthUser) (*explorer.Explorer, error) {
	explorerID, err := h.authService.LinkedExplorer(ctx, provider, user.ID)
	if err != nil && !errors.Is(err, errors.ErrorTypeNotFound) {
		return nil, err
	}
	if explorerID > 0 {
		return h.explorers.GetByID(ctx, explorerID)
	}

	var avatar *string
	if user.AvatarURL != "" {
		avatar = &user.AvatarURL
	}

	e, err := h.explorers.FindOrCreateByOAuth(ctx, provider, user.Email, user.Name, avatar)
	if err != nil {
		return nil, err
	}
	owner, err := h.authService.Link(ctx, auth.Link{
		ExplorerID:     e.ID,
		Provider:       provider,
		ProviderUserID: user.ID,
		ProviderEmail:  user.Email,
	})
	if err != nil {
		return nil, err
	}
	if owner != e.ID {
		return h.explorers.GetByID(ctx, owner)
	}
	return e, nil
}
