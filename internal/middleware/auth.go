package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"oasis-server/internal/auth"
	"oasis-server/internal/shared/cookies"
	"oasis-server/internal/shared/errors"
	"oasis-server/internal/shared/response"
)

type contextKey string

const ClaimsContextKey contextKey = "claims"

// JWT rejects requests without a valid session token and stores the claims
// in the request context.
func JWT(tokens *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With(
				"middleware", "jwt",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			token := cookies.AuthToken(r)
			if token == "" {
				response.Error(w, r, logger, errors.Unauthorized("authentication required"))
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				logger.Debug("Rejected session token", "error", err)
				response.Error(w, r, logger, errors.Unauthorized("invalid token"))
				return
			}

			logger.Debug("JWT authentication successful",
				"explorer_id", claims.ExplorerID,
				"username", claims.Username)

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

func ClaimsFromContext(ctx context.Context) *auth.Claims {
	if claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
