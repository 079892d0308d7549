// Package rest exposes the runaudit services over HTTP using Fiber.
package rest

import (
	"context"
	"time"

	"github.com/dmitrijs2005/runaudit/internal/common"
	"github.com/dmitrijs2005/runaudit/internal/dbx"
	"github.com/dmitrijs2005/runaudit/internal/logging"
	"github.com/dmitrijs2005/runaudit/internal/server/config"
	"github.com/dmitrijs2005/runaudit/internal/server/models"
	"github.com/dmitrijs2005/runaudit/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 5 * time.Second

type UserService interface {
	Signup(ctx context.Context, email, password string, fullName *string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type TemplateService interface {
	List(ctx context.Context) ([]*models.Template, error)
	Get(ctx context.Context, id string) (*models.Template, error)
}

type RunService interface {
	Upload(ctx context.Context, userID string, up services.Upload) (*models.Run, error)
	List(ctx context.Context, userID string) ([]*models.Run, error)
	Stats(ctx context.Context, userID string) (*models.RunStats, error)
	Get(ctx context.Context, userID, runID string) (*models.Run, error)
	DownloadURL(ctx context.Context, userID, runID string) (string, error)
}

// HTTPServer serves the public JSON API under common.APIPrefix.
type HTTPServer struct {
	address   string
	app       *fiber.App
	logger    logging.Logger
	users     UserService
	templates TemplateService
	runs      RunService
	db        dbx.Pinger
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService, ts TemplateService, rs RunService, db dbx.Pinger) *HTTPServer {
	s := &HTTPServer{
		address:   cfg.EndpointAddrHTTP,
		logger:    l.With("module", "http_server"),
		users:     us,
		templates: ts,
		runs:      rs,
		db:        db,
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.MaxUploadSize,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(s.requestLogger)
	s.app.Use(corsMiddleware(cfg.CORSOrigins))
	s.registerRoutes(cfg.RateLimitAuth)

	return s
}

func (s *HTTPServer) registerRoutes(authPerMinute int) {
	api := s.app.Group(common.APIPrefix)

	api.Get("/healthz", s.health)

	authGroup := api.Group("/auth")
	limit := rateLimitAuth(authPerMinute)
	authGroup.Post("/signup", limit, s.signup)
	authGroup.Post("/login", limit, s.login)
	authGroup.Get("/me", s.authRequired, s.me)
	authGroup.Post("/logout", s.logout)

	tmpl := api.Group("/templates")
	tmpl.Get("/", s.listTemplates)
	tmpl.Get("/:id", s.getTemplate)

	runs := api.Group("/runs", s.authRequired)
	runs.Post("/upload", s.uploadRun)
	runs.Get("/", s.listRuns)
	runs.Get("/stats", s.runStats)
	runs.Get("/:id", s.getRun)
	runs.Get("/:id/download", s.downloadRun)
}

// App returns the underlying Fiber application.
func (s *HTTPServer) App() *fiber.App {
	return s.app
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- s.app.Listen(s.address)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Stopping HTTP server...")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	case err := <-errCh:
		return err
	}
}
