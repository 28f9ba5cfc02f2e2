package httpapi

import "net/http"

// The page handlers below are deliberately bare: the real presentation layer
// lives outside this service. They exist so the gateway's zone policy has
// endpoints to guard.

func writePage(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!doctype html><title>PassVault</title>" + body))
}

func (s *HTTPServer) handleLanding(w http.ResponseWriter, r *http.Request) {
	writePage(w, `<h1>PassVault</h1><p><a href="/login">Log in</a> or <a href="/signup">sign up</a>.</p>`)
}

func (s *HTTPServer) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, `<h1>Log in</h1>`)
}

func (s *HTTPServer) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	writePage(w, `<h1>Sign up</h1>`)
}

func (s *HTTPServer) handlePanel(w http.ResponseWriter, r *http.Request) {
	writePage(w, `<h1>Panel</h1>`)
}
