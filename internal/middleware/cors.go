package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// NewCORS builds the CORS handler wrapping the whole engine. A "*" entry
// accepts every origin and echoes it back, so that the token cookie can
// travel with credentialed requests.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", TokenHeader, RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			options.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
			return cors.Handler(options)
		}
	}
	options.AllowedOrigins = allowedOrigins
	return cors.Handler(options)
}
