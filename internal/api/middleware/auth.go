package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/nailsbynatalia/booking-service/internal/api/handlers"
)

// AdminAuth guards the admin surface with a static bearer token.
func AdminAuth(token string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := bearerToken(r)
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				log.Warn("admin auth failed: %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CronAuth guards the cron surface. The secret may arrive as a bearer
// token or a ?secret= query parameter, matching common scheduler
// integrations. An empty configured secret is a deployment error and
// fails every request rather than silently opening the endpoints.
func CronAuth(secret string, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				log.Error("cron secret is not configured, rejecting %s %s", r.Method, r.URL.Path)
				handlers.RespondInternalError(w)
				return
			}

			presented := bearerToken(r)
			if presented == "" {
				presented = r.URL.Query().Get("secret")
			}
			if presented == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
				log.Warn("cron auth failed: %s %s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
