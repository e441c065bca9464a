package providers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type GoogleProvider struct {
	base
	userInfoURL string
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string, scopes []string) *GoogleProvider {
	return &GoogleProvider{
		base: base{name: "google", config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		}},
		userInfoURL: googleUserInfoURL,
	}
}

func (p *GoogleProvider) UserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error) {
	logger := slog.With("provider", "google", "operation", "get_user_info")

	var info googleUserInfo
	if err := p.getJSON(ctx, token, p.userInfoURL, &info); err != nil {
		logger.Error("Failed to fetch Google user info", "error", err)
		return nil, err
	}
	if info.ID == "" {
		return nil, fmt.Errorf("google user info missing user ID")
	}

	logger.Debug("Retrieved Google user info", "user_id", info.ID, "has_email", info.Email != "")
	return &OAuthUser{
		ID:            info.ID,
		Email:         info.Email,
		EmailVerified: info.VerifiedEmail,
		Name:          info.Name,
		AvatarURL:     info.Picture,
	}, nil
}
