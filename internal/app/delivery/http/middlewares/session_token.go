package middlewares

import (
	"cfs-service/internal/pkg/constvars"
	"cfs-service/internal/pkg/exceptions"
	"cfs-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// SessionToken resolves the bearer session token into the session id
// stored under CONTEXT_SESSION_ID_KEY.
func (m *Middlewares) SessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.ParseBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.Session.JWTSecret)
		if err != nil {
			m.Log.Info("session token rejected",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
