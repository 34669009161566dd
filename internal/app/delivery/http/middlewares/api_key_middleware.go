package middlewares

import (
	"net/http"
	"registro-service/internal/pkg/constvars"
	"registro-service/internal/pkg/exceptions"
	"registro-service/internal/pkg/utils"
)

// RequireAPIKey guards the search routes when an API key is configured. With
// no key configured the middleware is a pass-through, which keeps local
// development and tests friction-free.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configuredKey := m.InternalConfig.App.SuperadminAPIKey
		if configuredKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}
		if apiKey != configuredKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
