package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/spotshot-api/internal/config"
	"github.com/spotshot-api/internal/delivery/http/handler"
	"github.com/spotshot-api/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	spotHandler       *handler.SpotHandler
	favouriteHandler  *handler.FavouriteHandler
	userHandler       *handler.UserHandler
	moderationHandler *handler.ModerationHandler
	uploadHandler     *handler.UploadHandler
	geocodeHandler    *handler.GeocodeHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	spotHandler *handler.SpotHandler,
	favouriteHandler *handler.FavouriteHandler,
	userHandler *handler.UserHandler,
	moderationHandler *handler.ModerationHandler,
	uploadHandler *handler.UploadHandler,
	geocodeHandler *handler.GeocodeHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "SpotShot API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024, // фото спотов
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:               app,
		config:            cfg,
		logger:            logger,
		spotHandler:       spotHandler,
		favouriteHandler:  favouriteHandler,
		userHandler:       userHandler,
		moderationHandler: moderationHandler,
		uploadHandler:     uploadHandler,
		geocodeHandler:    geocodeHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api := s.app.Group("/api")

	optional := middleware.OptionalAuth(s.config.Auth.JWTSecret)
	required := middleware.Auth(s.config.Auth.JWTSecret)

	// Spots
	spots := api.Group("/spots")
	spots.Get("/", optional, s.spotHandler.List)
	spots.Get("/countries", s.spotHandler.Countries)
	spots.Get("/cities", s.spotHandler.Cities)
	spots.Get("/spot/:id", optional, s.spotHandler.Get)
	spots.Get("/user/:userId", s.spotHandler.UserSpots)
	spots.Get("/count/:userId", s.spotHandler.UserSpotCount)
	spots.Post("/", required, s.spotHandler.Create)
	spots.Put("/:id", required, s.spotHandler.Update)

	// Favourites
	favourites := api.Group("/favourites")
	favourites.Get("/check", s.favouriteHandler.Check)
	favourites.Get("/count/:spotId", s.favouriteHandler.Count)
	favourites.Get("/:userId", s.favouriteHandler.List)
	favourites.Post("/", required, s.favouriteHandler.Add)

	// Users
	api.Get("/users/:id", s.userHandler.Get)

	// Moderation
	moderation := api.Group("/moderation")
	moderation.Post("/report", required, s.moderationHandler.Report)
	moderation.Get("/reports", required, s.moderationHandler.ListReports)
	moderation.Post("/review/:id", required, s.moderationHandler.Review)

	// Upload
	api.Post("/upload", required, s.uploadHandler.Upload)

	// Geocode
	api.Get("/geocode/reverse", s.geocodeHandler.Reverse)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App возвращает приложение Fiber для тестов
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
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
