package mw

import (
	"encoding/json"
	"net/http"
	"strings"

	"linkden/internal/logger"
)

// RequireToken rejects any request whose Authorization header does not carry
// the configured bearer token. The token is the segment after the first space
// ("Bearer <token>") and is compared with exact string equality. Rejections
// never reach the handlers; the only side effect is logging the rejected path.
func RequireToken(token string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			parts := strings.SplitN(auth, " ", 2)
			if auth == "" || len(parts) != 2 || parts[1] != token {
				log.Error("unauthorized request",
					logger.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized request"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
