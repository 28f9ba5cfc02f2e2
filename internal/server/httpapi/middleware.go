package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/server/auth"
)

// sessionToken extracts the raw session token from the request cookie.
// Returns "" when no cookie is present.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// authorize resolves the caller identity from the session cookie, writing
// the 401 response itself on failure. Every API handler calls this before
// touching storage; the reported reason distinguishes a missing cookie from
// a bad token but never leaks more.
func (s *HTTPServer) authorize(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	token := sessionToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	id, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return nil, false
	}

	return id, true
}

// gateway applies the page-zone policy: authenticated users are pushed from
// the landing page to the panel, and the panel requires a valid session.
// The check is advisory for the API paths, which pass through untouched and
// re-verify on their own.
func (s *HTTPServer) gateway(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)

		if r.URL.Path == "/" && token != "" {
			if _, err := auth.ParseToken(token, s.jwtSecret); err == nil {
				http.Redirect(w, r, "/panel", http.StatusFound)
				return
			}
		}

		if strings.HasPrefix(r.URL.Path, "/panel") {
			if token == "" {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if _, err := auth.ParseToken(token, s.jwtSecret); err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
