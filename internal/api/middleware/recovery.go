package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/veggierescue/veggierescue/internal/api/models"
)

// Recovery returns a middleware that recovers from panics and writes the
// generic 500 envelope. The panic value and stack stay in the server log.
func Recovery(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.Error().
						Str("request_id", GetRequestID(r.Context())).
						Str("code", models.CodeInternal).
						Interface("error", err).
						Str("stack", string(debug.Stack())).
						Msg("panic recovered")

					models.NewInternal().Write(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
