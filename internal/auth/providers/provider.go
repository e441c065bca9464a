package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
)

// OAuthUser is the identity every provider reports back after login.
type OAuthUser struct {
	ID            string
	Email         string
	EmailVerified bool
	Name          string
	AvatarURL     string
}

type OAuthProvider interface {
	Name() string
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error)
	UserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error)
}

// base carries the oauth2 plumbing shared by all providers.
type base struct {
	name   string
	config *oauth2.Config
}

func (b *base) Name() string { return b.name }

func (b *base) AuthURL(state string) string {
	return b.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (b *base) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	logger := slog.With("provider", b.name, "operation", "exchange_code")
	logger.Debug("Exchanging authorization code for access token")

	token, err := b.config.Exchange(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code", "error", err)
		return nil, fmt.Errorf("failed to exchange %s authorization code: %w", b.name, err)
	}
	return token, nil
}

// getJSON decodes the body of an authenticated GET into out.
func (b *base) getJSON(ctx context.Context, token *oauth2.Token, url string, out any) error {
	client := b.config.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request %s: %w", url, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Failed to close response body", "provider", b.name, "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s API returned status %d", b.name, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", b.name, err)
	}
	return nil
}
