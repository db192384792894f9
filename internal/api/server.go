// Package api exposes game sessions over HTTP and websocket using fiber.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/session"
)

// Options configures NewApp.
type Options struct {
	// AllowOrigins is passed to the CORS middleware. Empty disables CORS.
	AllowOrigins string
	// Strict makes the stateless SAN helper reject moves that leave the
	// mover's king in check.
	Strict bool
}

// Handler serves the REST and websocket routes.
type Handler struct {
	manager *session.Manager
	logger  zerolog.Logger
	strict  bool
}

// NewHandler creates a handler over manager.
func NewHandler(manager *session.Manager, logger zerolog.Logger, strict bool) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger.With().Str("component", "api").Logger(),
		strict:  strict,
	}
}

// NewApp builds a fiber app with every route registered.
func NewApp(manager *session.Manager, logger zerolog.Logger, opts Options) *fiber.App {
	h := NewHandler(manager, logger, opts.Strict)

	app := fiber.New(fiber.Config{
		AppName:               "chessd",
		DisableStartupMessage: true,
		ErrorHandler:          h.handleError,
	})
	app.Use(recover.New())
	if opts.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, DELETE, OPTIONS",
		}))
	}
	app.Use(h.logRequests)

	h.Register(app)
	return app
}

// Register adds the routes to router.
func (h *Handler) Register(router fiber.Router) {
	api := router.Group("/api")
	api.Post("/fen/validate", h.ValidateFEN)
	api.Post("/notation/san", h.SAN)

	games := api.Group("/games")
	games.Get("/", h.ListGames)
	games.Post("/", h.CreateGame)
	games.Get("/:id", h.GetGame)
	games.Delete("/:id", h.DeleteGame)
	games.Get("/:id/destinations", h.Destinations)
	games.Post("/:id/moves", h.PlayMove)
	games.Delete("/:id/premove", h.CancelPremove)
	games.Post("/:id/sync", h.Sync)
	games.Get("/:id/diagram.svg", h.Diagram)

	router.Get("/ws/games/:id", h.upgrade, h.stream())
}

func (h *Handler) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	h.logger.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("request")
	return err
}
