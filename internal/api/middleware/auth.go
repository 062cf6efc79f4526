package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api/models"
)

// Auth creates authentication middleware that validates the shared-secret
// bearer token. The comparison is constant-time to avoid timing
// side-channels. Every rejected request is logged with the reason; the
// client only ever sees the fixed unauthorized envelope.
func Auth(accessCode string, log zerolog.Logger) func(http.Handler) http.Handler {
	secret := []byte(accessCode)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeUnauthorized(w, r, log, "missing authorization header")
				return
			}

			const bearerPrefix = "Bearer "
			if len(authHeader) < len(bearerPrefix) ||
				!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
				writeUnauthorized(w, r, log, "invalid authorization header format")
				return
			}

			token := authHeader[len(bearerPrefix):]
			if subtle.ConstantTimeCompare([]byte(token), secret) != 1 {
				writeUnauthorized(w, r, log, "access code mismatch")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeUnauthorized logs the failure and writes the 401 envelope.
func writeUnauthorized(w http.ResponseWriter, r *http.Request, log zerolog.Logger, reason string) {
	log.Warn().
		Str("request_id", GetRequestID(r.Context())).
		Str("code", models.CodeUnauthorized).
		Str("path", r.URL.Path).
		Msg(reason)

	models.NewUnauthorized().Write(w)
}
