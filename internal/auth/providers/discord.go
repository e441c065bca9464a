package providers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
)

var DiscordEndpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/api/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

const discordUserInfoURL = "https://discord.com/api/users/@me"

type discordUserInfo struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Email      string `json:"email"`
	Verified   bool   `json:"verified"`
	Avatar     string `json:"avatar"`
}

func (u *discordUserInfo) avatarURL() string {
	if u.Avatar == "" {
		return ""
	}
	return fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", u.ID, u.Avatar)
}

type DiscordProvider struct {
	base
	userInfoURL string
}

func NewDiscordProvider(clientID, clientSecret, redirectURL string, scopes []string) *DiscordProvider {
	return &DiscordProvider{
		base: base{name: "discord", config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     DiscordEndpoint,
		}},
		userInfoURL: discordUserInfoURL,
	}
}

func (p *DiscordProvider) UserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error) {
	logger := slog.With("provider", "discord", "operation", "get_user_info")

	var info discordUserInfo
	if err := p.getJSON(ctx, token, p.userInfoURL, &info); err != nil {
		logger.Error("Failed to fetch Discord user info", "error", err)
		return nil, err
	}
	if info.ID == "" {
		return nil, fmt.Errorf("discord user info missing user ID")
	}

	name := info.GlobalName
	if name == "" {
		name = info.Username
	}

	logger.Debug("Retrieved Discord user info", "user_id", info.ID, "has_email", info.Email != "")
	return &OAuthUser{
		ID:            info.ID,
		Email:         info.Email,
		EmailVerified: info.Verified,
		Name:          name,
		AvatarURL:     info.avatarURL(),
	}, nil
}
