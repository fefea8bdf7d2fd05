package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS политика кросс-доменных запросов для фронтенда
func CORS(allowedOrigins []string, allowCredentials bool) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: allowCredentials,
	})
	return c.Handler
}
