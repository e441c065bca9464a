package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func jsonServer(t *testing.T, routes map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

var token = &oauth2.Token{AccessToken: "token", TokenType: "Bearer"}

func TestGoogleUserInfo(t *testing.T) {
	srv := jsonServer(t, map[string]any{
		"/userinfo": map[string]any{
			"id": "g-1", "email": "a@b.c", "verified_email": true, "name": "Ada", "picture": "http://pic",
		},
	})
	p := NewGoogleProvider("id", "secret", "http://cb", nil)
	p.userInfoURL = srv.URL + "/userinfo"

	user, err := p.UserInfo(context.Background(), token)
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if user.ID != "g-1" || user.Email != "a@b.c" || !user.EmailVerified || user.AvatarURL != "http://pic" {
		t.Fatalf("user = %+v", user)
	}
}

func TestGitHubUserInfoUsesVerifiedEmail(t *testing.T) {
	srv := jsonServer(t, map[string]any{
		"/user": map[string]any{"id": 42, "login": "octo", "email": "public@x.y"},
		"/user/emails": []map[string]any{
			{"email": "unverified@x.y", "primary": true, "verified": false},
			{"email": "verified@x.y", "primary": false, "verified": true},
		},
	})
	p := NewGitHubProvider("id", "secret", "http://cb", nil)
	p.apiURL = srv.URL

	user, err := p.UserInfo(context.Background(), token)
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if user.ID != "42" || user.Name != "octo" {
		t.Fatalf("user = %+v", user)
	}
	if user.Email != "verified@x.y" || !user.EmailVerified {
		t.Fatalf("email = %q verified=%v", user.Email, user.EmailVerified)
	}
}

func TestPickGitHubEmail(t *testing.T) {
	tests := []struct {
		name   string
		emails []githubEmail
		want   string
		ok     bool
	}{
		{"primary wins", []githubEmail{{"b", false, true}, {"a", true, true}}, "a", true},
		{"any verified", []githubEmail{{"a", true, false}, {"b", false, true}}, "b", true},
		{"none verified", []githubEmail{{"a", true, false}}, "", false},
		{"empty", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickGitHubEmail(tt.emails)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("pickGitHubEmail = %q, %v", got, ok)
			}
		})
	}
}

func TestDiscordUserInfo(t *testing.T) {
	srv := jsonServer(t, map[string]any{
		"/me": map[string]any{"id": "99", "username": "wanderer", "email": "w@d.c", "verified": true, "avatar": "abc"},
	})
	p := NewDiscordProvider("id", "secret", "http://cb", nil)
	p.userInfoURL = srv.URL + "/me"

	user, err := p.UserInfo(context.Background(), token)
	if err != nil {
		t.Fatalf("UserInfo: %v", err)
	}
	if user.Name != "wanderer" || user.AvatarURL != "https://cdn.discordapp.com/avatars/99/abc.png" {
		t.Fatalf("user = %+v", user)
	}
}

func TestUserInfoRejectsErrorStatus(t *testing.T) {
	srv := jsonServer(t, map[string]any{})
	p := NewDiscordProvider("id", "secret", "http://cb", nil)
	p.userInfoURL = srv.URL + "/missing"

	if _, err := p.UserInfo(context.Background(), token); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("err = %v", err)
	}
}

func TestAuthURLCarriesState(t *testing.T) {
	p := NewGitHubProvider("client", "secret", "http://cb", []string{"user:email"})
	u := p.AuthURL("xyz")
	if !strings.Contains(u, "state=xyz") || !strings.Contains(u, "client_id=client") {
		t.Fatalf("AuthURL = %s", u)
	}
}
