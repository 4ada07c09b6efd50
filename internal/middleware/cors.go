package middleware

import (
	"net/http"
	"slices"
)

// preflightMaxAge is how long, in seconds, browsers may cache a preflight.
const preflightMaxAge = "600"

const allMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CORS applies an origin allow-list with credentials enabled.
//
// Allowed origins are echoed back, never answered with "*". A preflight
// from an origin outside the list is refused with 400. Other requests from unknown or
// absent origins are served without CORS headers.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := slices.Clone(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			originAllowed := slices.Contains(allowed, origin)
			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

			if preflight {
				if !originAllowed {
					w.Header().Set("Content-Type", "text/plain; charset=utf-8")
					w.WriteHeader(http.StatusBadRequest)
					_, _ = w.Write([]byte("Disallowed CORS origin"))
					return
				}

				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", allMethods)
				if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
					h.Set("Access-Control-Allow-Headers", requested)
				}
				h.Set("Access-Control-Max-Age", preflightMaxAge)
				h.Add("Vary", "Origin")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			if originAllowed {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Add("Vary", "Origin")
			}

			next.ServeHTTP(w, r)
		})
	}
}
