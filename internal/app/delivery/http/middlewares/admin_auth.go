package middlewares

import (
	"careslot-service/internal/pkg/constvars"
	"careslot-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireAdmin rejects the request before the handler runs when the admin
// password check fails.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := m.AdminAuth.Authorize(r); err != nil {
			requestID := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
			m.Log.Warn("admin authorization rejected",
				zap.Any(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
