package middleware

import (
	"log/slog"
	"net/http"

	"oasis-server/internal/auth"
	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/response"
)

func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "admin",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		if !claims.IsAdmin() {
			logger.Warn("Non-admin explorer attempted to access admin endpoint",
				"explorer_id", claims.ExplorerID,
				"username", claims.Username,
				"role", claims.Role)
			response.Error(w, r, logger, errors.Forbidden("admin access required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(tokens *auth.TokenIssuer, next http.Handler) http.Handler {
	return JWT(tokens)(Admin(next))
}
