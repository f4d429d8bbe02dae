package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sakhisuraksha/sakhi-api/internal/api/shared"
	"github.com/sakhisuraksha/sakhi-api/internal/platform/logger"
	"github.com/sakhisuraksha/sakhi-api/internal/service/session"
)

// SessionMiddleware decodes the session token on tracker routes.
type SessionMiddleware struct {
	tokens session.TokenService
}

// NewSessionMiddleware creates a new SessionMiddleware with the given dependencies.
func NewSessionMiddleware(tokens session.TokenService) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens}
}

// RequireSession validates the bearer token from the Authorization header and
// adds the decoded session to the request context.
func (m *SessionMiddleware) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Session token required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		sess, err := m.tokens.Parse(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, session.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Session expired")
			case errors.Is(err, session.ErrInvalidToken),
				errors.Is(err, session.ErrMissingToken):
				// Invalid tokens log at WARN
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized,
					"Invalid session token", err, shared.WithElevatedLogLevel())
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Session error", err)
			}
			return
		}

		// Tag every later log line with the session
		log := logger.FromContext(r.Context()).With(slog.String("session_id", sess.ID.String()))
		ctx := logger.WithLogger(shared.SetSession(r.Context(), sess), log)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
