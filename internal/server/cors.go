package server

import (
	"net/http"

	"github.com/go-chi/cors"
)

// contactCORS lets the listed origins post the contact form with HTMX. Every
// other route stays same-origin.
func contactCORS(origins []string, next http.Handler) http.Handler {
	withCORS := cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{
			"Content-Type",
			"HX-Request",
			"HX-Current-URL",
			"HX-Target",
			"HX-Trigger",
			"HX-Trigger-Name",
			"HX-Boosted",
		},
		MaxAge: 300,
	})(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/contact", "/contact-form":
			withCORS.ServeHTTP(w, r)
		default:
			next.ServeHTTP(w, r)
		}
	})
}
