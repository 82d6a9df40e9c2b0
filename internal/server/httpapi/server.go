// Package httpapi exposes the account service over HTTP. It is a thin
// boundary: request decoding, token verification, and error-to-status
// mapping live here, all business rules live in the services package.
package httpapi

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/carlosdaniiel07/identity-service/internal/logging"
	"github.com/carlosdaniiel07/identity-service/internal/server/auth"
	"github.com/carlosdaniiel07/identity-service/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// UserProvider is the slice of the account service the API needs.
type UserProvider interface {
	SignUp(ctx context.Context, user *models.User, password string) error
	Login(ctx context.Context, email string, password string) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	LoggedUserID(claims *auth.Claims) (string, error)
	UpdateProfilePhoto(ctx context.Context, file io.Reader, contentType string) (*models.ProfilePhoto, error)
}

type Server struct {
	address   string
	users     UserProvider
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, users UserProvider, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     users,
		jwtSecret: []byte(secretKey),
	}
}

// Routes assembles the chi router. Public: signup and auth. Everything under
// /api/users requires a valid bearer token.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/api/signup", s.handleSignUp)
	r.Post("/api/auth", s.handleLogin)

	r.Route("/api/users", func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Get("/me", s.handleMe)
		r.Put("/profile-image", s.handleProfileImage)
	})

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
