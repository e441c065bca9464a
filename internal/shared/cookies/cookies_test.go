package cookies

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oasis-server/internal/shared/config"
)

func withConfig(t *testing.T) {
	t.Helper()
	prev := config.GlobalConfig
	config.GlobalConfig = &config.Config{
		Auth:     config.AuthConfig{TokenExpiration: time.Hour, CookieSameSite: "strict"},
		Frontend: config.FrontendConfig{URL: "https://oasis.example.com:8443"},
	}
	t.Cleanup(func() { config.GlobalConfig = prev })
}

func TestSetAndClearAuthCookie(t *testing.T) {
	withConfig(t)

	rec := httptest.NewRecorder()
	SetAuthCookie(rec, "token-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies", len(cookies))
	}
	c := cookies[0]
	if c.Name != AuthCookieName || c.Value != "token-value" || c.MaxAge != 3600 {
		t.Fatalf("cookie = %+v", c)
	}
	if c.Domain != "oasis.example.com" || c.SameSite != http.SameSiteStrictMode || !c.HttpOnly {
		t.Fatalf("cookie attributes = %+v", c)
	}

	rec = httptest.NewRecorder()
	ClearAuthCookie(rec)
	if c := rec.Result().Cookies()[0]; c.MaxAge >= 0 || c.Value != "" {
		t.Fatalf("cleared cookie = %+v", c)
	}
}

func TestAuthToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := AuthToken(req); got != "" {
		t.Fatalf("AuthToken = %q", got)
	}

	req.Header.Set("Authorization", "Bearer abc")
	if got := AuthToken(req); got != "abc" {
		t.Fatalf("AuthToken from header = %q", got)
	}

	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "from-cookie"})
	if got := AuthToken(req); got != "from-cookie" {
		t.Fatalf("AuthToken from cookie = %q", got)
	}
}

func TestExtractDomain(t *testing.T) {
	tests := map[string]string{
		"http://localhost:3000": "",
		"http://127.0.0.1":      "",
		"https://oasis.example": "oasis.example",
		"::not a url":           "",
	}
	for in, want := range tests {
		if got := extractDomain(in); got != want {
			t.Errorf("extractDomain(%q) = %q, want %q", in, got, want)
		}
	}
}
