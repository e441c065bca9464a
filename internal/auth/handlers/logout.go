package handlers

import (
	"log/slog"
	"net/http"

	"oasis-server/internal/shared/cookies"
	"oasis-server/internal/shared/response"
)

type LogoutHandler struct{}

func NewLogoutHandler() *LogoutHandler {
	return &LogoutHandler{}
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "logout", "remote_addr", r.RemoteAddr)

	cookies.ClearAuthCookie(w)
	response.Success(w, http.StatusOK, map[string]string{"message": "logged out"})

	logger.Info("Explorer logged out")
}
