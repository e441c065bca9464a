package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"oasis-server/internal/shared/config"
)

// resolveRedirectURI accepts a requested redirect only when it points at the
// configured frontend. Anything else falls back to the frontend URL.
func resolveRedirectURI(requested string) string {
	frontend := strings.TrimSuffix(config.GlobalConfig.Frontend.URL, "/")
	if requested == "" {
		return frontend
	}

	want, err := url.Parse(frontend)
	if err != nil {
		return frontend
	}
	got, err := url.Parse(requested)
	if err != nil || got.Scheme != want.Scheme || got.Host != want.Host {
		return frontend
	}
	return strings.TrimSuffix(requested, "/")
}

// redirectWithError sends the browser to the frontend error page.
func redirectWithError(w http.ResponseWriter, r *http.Request, redirectURI, errorType string) {
	if redirectURI == "" {
		redirectURI = strings.TrimSuffix(config.GlobalConfig.Frontend.URL, "/")
	}

	params := url.Values{}
	params.Set("error", errorType)
	http.Redirect(w, r, redirectURI+"/auth/error?"+params.Encode(), http.StatusTemporaryRedirect)
}
