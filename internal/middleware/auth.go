package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/alexjohnson-dev/portfolio/backend/pkg/utils"
)

// AdminOnly guards mutation routes with a static bearer token. When no token
// is configured the admin surface is disabled entirely.
func AdminOnly(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				utils.RespondError(w, http.StatusForbidden, "admin access disabled")
				return
			}

			presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				utils.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
