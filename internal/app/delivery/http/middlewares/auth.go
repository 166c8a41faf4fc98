package middlewares

import (
	"availability-service/internal/pkg/constvars"
	"availability-service/internal/pkg/exceptions"
	"availability-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
)

// Authenticate guards the engine endpoints. Requests already authenticated
// by APIKeyAuth pass; everything else needs a valid bearer token.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ok, _ := r.Context().Value(constvars.ContextAPIKeyAuthKey).(bool); ok {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		clientID, err := utils.ParseClientJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextClientIDKey, clientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
