package middlewares

import (
	"net/http"
	"os"
	"strings"
)

// CorsMiddleware libera o frontend configurado em FRONTEND_URLS (separadas
// por vírgula) com envio de cookies.
func CorsMiddleware(next http.Handler) http.Handler {
	allowed := strings.Split(os.Getenv("FRONTEND_URLS"), ",")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, a := range allowed {
			if a != "" && strings.TrimSpace(a) == origin {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
				break
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
