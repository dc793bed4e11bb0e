package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// APIKeyAuth gates every request behind the shared x-api-key secret. A
// missing or mismatched key is rejected with 401 before any handler runs,
// so an unauthorized request never touches the data store.
func APIKeyAuth(apiKey string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("x-api-key")
			if subtle.ConstantTimeCompare([]byte(presented), []byte(apiKey)) != 1 {
				logger.Debug().
					Str("path", r.URL.Path).
					Bool("keyPresent", presented != "").
					Msg("Rejected request with missing or invalid API key")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
