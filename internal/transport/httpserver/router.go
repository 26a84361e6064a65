// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kenobicjj/youtubeanalystAPI/internal/domain"
	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/dto"
	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/handler"
	"github.com/kenobicjj/youtubeanalystAPI/internal/transport/httpserver/middleware"
	"github.com/kenobicjj/youtubeanalystAPI/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Name         string
	BodyLimit    int
	Debug        bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TemplatesDir string
	StaticDir    string
	CORSOrigins  string
	DefaultModel string
}

// Dependencies are the application services behind the routes.
type Dependencies struct {
	Analyzer    handler.ReportAnalyzer
	Models      handler.ModelChecker
	Credentials domain.CredentialStore
	Ready       func() bool
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(cfg ServerConfig, deps Dependencies, v *validator.Validator, logger *zap.Logger) *Server {
	engine := html.New(cfg.TemplatesDir, ".html")
	if cfg.Debug {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.Name,
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		ErrorHandler:          errorHandler(logger),
		Views:                 engine,
		DisableStartupMessage: !cfg.Debug,
	})

	// Health checks first so probes answer even when later middleware is slow.
	app.Use(middleware.NewHealthCheck(deps.Ready))

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(middleware.CORS(cfg.CORSOrigins))
	app.Use(compress.New())

	app.Static("/static", cfg.StaticDir)

	analyzeHandler := handler.NewAnalyzeHandler(deps.Analyzer, v, logger)
	modelHandler := handler.NewModelHandler(deps.Models, logger)
	settingsHandler := handler.NewSettingsHandler(deps.Credentials, v, logger)
	indexHandler := handler.NewIndexHandler(cfg.DefaultModel, logger)

	registerRoutes(app, analyzeHandler, modelHandler, settingsHandler, indexHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all routes. Paths match the ones the web page calls.
func registerRoutes(
	app *fiber.App,
	analyzeHandler *handler.AnalyzeHandler,
	modelHandler *handler.ModelHandler,
	settingsHandler *handler.SettingsHandler,
	indexHandler *handler.IndexHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	app.Get("/", indexHandler.Render)

	app.Post("/analyze", analyzeHandler.Analyze)
	app.Get("/check_ollama", modelHandler.Check)
	app.Post("/save_api_key", settingsHandler.SaveAPIKey)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		fields := []zap.Field{
			zap.Error(err),
			zap.Int("status", code),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found", fields...)
		case code >= 500:
			logger.Error("server error", fields...)
		case code >= 400:
			logger.Warn("client error", fields...)
		default:
			logger.Error("unhandled error", fields...)
		}

		resp := dto.ErrorResponse{Error: err.Error(), Code: "UNHANDLED_ERROR"}
		if code >= 500 && fe == nil {
			resp.Error = "internal server error"
		}

		return c.Status(code).JSON(resp)
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server, waiting for in-flight
// analyses until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.ShutdownWithContext(ctx)
}
