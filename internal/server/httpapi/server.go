// Package httpapi exposes the vault over an HTTP JSON API and guards the two
// page zones (public landing, protected panel) with the access gateway.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/config"
	"github.com/dmitrijs2005/passvault/internal/server/users"
	"github.com/dmitrijs2005/passvault/internal/server/vault"
	"github.com/go-chi/chi/v5"
)

type HTTPServer struct {
	address    string
	users      *users.Service
	vault      *vault.Service
	logger     logging.Logger
	jwtSecret  []byte
	cookieOpts CookieOptions
}

func NewHTTPServer(l logging.Logger, us *users.Service, vs *vault.Service, cfg *config.Config) *HTTPServer {
	return &HTTPServer{
		address:   cfg.EndpointAddr,
		logger:    l.With("module", "http_server"),
		users:     us,
		vault:     vs,
		jwtSecret: []byte(cfg.JWTSecret),
		cookieOpts: CookieOptions{
			Secure: cfg.SecureCookies,
			MaxAge: cfg.TokenValidityDuration,
		},
	}
}

// Handler builds the route tree. The gateway middleware wraps everything;
// the API handlers still re-verify the token themselves, so the gateway is
// never the sole authorization boundary.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(s.gateway)

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)
		r.Get("/check-token", s.handleCheckToken)
		r.Route("/passwords", func(r chi.Router) {
			r.Get("/", s.handleListCredentials)
			r.Post("/", s.handleCreateCredential)
			r.Put("/", s.handleUpdateCredential)
			r.Delete("/", s.handleDeleteCredential)
		})
	})

	r.Get("/", s.handleLanding)
	r.Get("/login", s.handleLoginPage)
	r.Get("/signup", s.handleSignupPage)
	r.Get("/panel", s.handlePanel)

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
