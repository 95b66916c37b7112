package middleware

import (
	"net/http"

	"cinehub-client/internal/data/repository"
	"cinehub-client/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthSession resolves the session cookie to a stored client session and
// puts the backend bearer token on the request context. Every
// authenticated gateway call reads the token from there.
func AuthSession(sessions repository.SessionRepository, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			sessionID, err := uuid.Parse(cookie.Value)
			if err != nil {
				utils.ResponseUnauthorized(w, "Invalid session")
				return
			}

			session, err := sessions.Find(r.Context(), sessionID)
			if err != nil {
				logger.Error("Failed to validate session",
					zap.String("session_id", sessionID.String()),
					zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("session_id", sessionID.String()))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetSessionContext(r.Context(), session.ID, session.Token, session.IsAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin gates the console routes on the admin flag captured at login.
// Must run after AuthSession.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetSessionIDFromContext(r.Context()); !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if !utils.IsAdminFromContext(r.Context()) {
				logger.Warn("Non-admin access attempt", zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
