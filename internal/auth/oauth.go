package auth

import (
	"log/slog"

	"oasis-server/internal/auth/providers"
	"oasis-server/internal/shared/config"
)

// ConfiguredProviders builds a provider for every OAuth service with client
// credentials set. Unconfigured services are skipped with a warning.
func ConfiguredProviders(cfg *config.Config) []providers.OAuthProvider {
	logger := slog.With("component", "oauth", "operation", "init")

	var out []providers.OAuthProvider
	if cfg.GoogleOAuthConfigured() {
		g := cfg.OAuth.Google
		out = append(out, providers.NewGoogleProvider(g.ClientID, g.ClientSecret, g.RedirectURL, g.Scopes))
	} else {
		logger.Warn("Google OAuth not configured - missing client credentials")
	}

	if cfg.GitHubOAuthConfigured() {
		g := cfg.OAuth.GitHub
		out = append(out, providers.NewGitHubProvider(g.ClientID, g.ClientSecret, g.RedirectURL, g.Scopes))
	} else {
		logger.Warn("GitHub OAuth not configured - missing client credentials")
	}

	if cfg.DiscordOAuthConfigured() {
		d := cfg.OAuth.Discord
		out = append(out, providers.NewDiscordProvider(d.ClientID, d.ClientSecret, d.RedirectURL, d.Scopes))
	} else {
		logger.Warn("Discord OAuth not configured - missing client credentials")
	}

	logger.Info("OAuth configuration completed", "server_url", cfg.Server.URL, "providers", len(out))
	return out
}
