package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

const githubAPIURL = "https://api.github.com"

type githubUserInfo struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

type GitHubProvider struct {
	base
	apiURL string
}

func NewGitHubProvider(clientID, clientSecret, redirectURL string, scopes []string) *GitHubProvider {
	return &GitHubProvider{
		base: base{name: "github", config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     github.Endpoint,
		}},
		apiURL: githubAPIURL,
	}
}

// UserInfo reads the profile and then the email list, since the profile
// only carries a public email and never says whether it is verified.
func (p *GitHubProvider) UserInfo(ctx context.Context, token *oauth2.Token) (*OAuthUser, error) {
	logger := slog.With("provider", "github", "operation", "get_user_info")

	var info githubUserInfo
	if err := p.getJSON(ctx, token, p.apiURL+"/user", &info); err != nil {
		logger.Error("Failed to fetch GitHub user info", "error", err)
		return nil, err
	}
	if info.ID == 0 {
		return nil, fmt.Errorf("github user info missing user ID")
	}

	user := &OAuthUser{
		ID:        strconv.FormatInt(info.ID, 10),
		Name:      info.Name,
		AvatarURL: info.AvatarURL,
	}
	if user.Name == "" {
		user.Name = info.Login
	}

	var emails []githubEmail
	if err := p.getJSON(ctx, token, p.apiURL+"/user/emails", &emails); err != nil {
		logger.Warn("Failed to fetch GitHub emails", "error", err)
		return user, nil
	}
	if email, ok := pickGitHubEmail(emails); ok {
		user.Email = email
		user.EmailVerified = true
	}

	logger.Debug("Retrieved GitHub user info", "user_id", user.ID, "has_email", user.Email != "")
	return user, nil
}

// pickGitHubEmail prefers the primary verified address over any other
// verified one.
func pickGitHubEmail(emails []githubEmail) (string, bool) {
	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, true
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, true
		}
	}
	return "", false
}
