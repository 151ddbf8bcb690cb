package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/inkatravel-api/internal/config"
	"github.com/inkatravel-api/internal/delivery/http/handler"
	"github.com/inkatravel-api/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server for the booking API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	tourHandler       *handler.TourHandler
	transportHandler  *handler.TransportHandler
	cartHandler       *handler.CartHandler
	i18nHandler       *handler.I18nHandler
	directionsHandler *handler.DirectionsHandler

	preferences middleware.PreferenceReader
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tourHandler *handler.TourHandler,
	transportHandler *handler.TransportHandler,
	cartHandler *handler.CartHandler,
	i18nHandler *handler.I18nHandler,
	directionsHandler *handler.DirectionsHandler,
	preferences middleware.PreferenceReader,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Inka Travel API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		tourHandler:       tourHandler,
		transportHandler:  transportHandler,
		cartHandler:       cartHandler,
		i18nHandler:       i18nHandler,
		directionsHandler: directionsHandler,
		preferences:       preferences,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.Auth(s.config.Auth.JWTSecret, s.config.Auth.CookieName))
	s.app.Use(middleware.Language(s.preferences, s.config.I18n.CookieName))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Tours: public reads, admin writes
	api.Get("/tours", s.tourHandler.List)
	api.Get("/tours/slug/:slug", s.tourHandler.GetBySlug)
	api.Post("/tours", middleware.RequireAdmin(), s.tourHandler.Create)
	api.Patch("/tours/:id", middleware.RequireAdmin(), s.tourHandler.Update)
	api.Put("/tours/:id/transport-options", middleware.RequireAdmin(), s.tourHandler.SetTransportOptions)
	api.Delete("/tours/:id", middleware.RequireAdmin(), s.tourHandler.Delete)

	// Transport services
	api.Get("/tour-transport", s.transportHandler.List)
	api.Get("/tour-transport/:slug", s.transportHandler.GetBySlug)
	api.Get("/tour-transport/:slug/route", s.directionsHandler.GetTransportRoute)
	api.Post("/tour-transport", middleware.RequireAdmin(), s.transportHandler.Create)
	api.Patch("/tour-transport/:id", middleware.RequireAdmin(), s.transportHandler.Update)
	api.Delete("/tour-transport/:id", middleware.RequireAdmin(), s.transportHandler.Delete)

	// Cart: the summary is public by design, everything else needs a user
	api.Get("/cart/summary", s.cartHandler.GetSummary)
	api.Get("/cart", middleware.RequireAuth(), s.cartHandler.GetCart)
	api.Delete("/cart", middleware.RequireAuth(), s.cartHandler.Clear)
	api.Post("/cart/items", middleware.RequireAuth(), s.cartHandler.AddItem)
	api.Delete("/cart/items/:itemId", middleware.RequireAuth(), s.cartHandler.RemoveItem)
	api.Post("/cart/checkout", middleware.RequireAuth(), s.cartHandler.Checkout)

	// I18n
	api.Get("/i18n/dictionary", s.i18nHandler.GetDictionary)
	api.Put("/i18n/preference", s.i18nHandler.SetPreference)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
