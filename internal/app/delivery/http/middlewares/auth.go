package middlewares

import (
	"clinicsync-service/internal/pkg/constvars"
	"clinicsync-service/internal/pkg/exceptions"
	"clinicsync-service/internal/pkg/utils"
	"context"
	"net/http"
)

// BearerToken copies the caller's bearer token into the request context so
// downstream clinic backend calls can forward it. When no token is supplied
// and the service has no fallback credential, the request is rejected early.
func (m *Middlewares) BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := utils.ExtractBearerToken(r)
		if token == "" {
			if m.InternalConfig.ClinicBackend.ServiceToken == "" {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_BEARER_TOKEN_KEY, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
