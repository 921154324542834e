package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"clicksign-esign/internal/config"
	"clicksign-esign/internal/delivery/http/handler"
	"clicksign-esign/internal/domain/entity"
)

type Router struct {
	app            *fiber.App
	config         *config.Config
	esignHandler   *handler.EsignHandler
	healthHandler  *handler.HealthHandler
	webhookHandler *handler.WebhookHandler
	logHandler     *handler.LogHandler
}

func NewRouter(
	cfg *config.Config,
	esignHandler *handler.EsignHandler,
	healthHandler *handler.HealthHandler,
	webhookHandler *handler.WebhookHandler,
	logHandler *handler.LogHandler,
) *Router {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: customErrorHandler,
	})

	return &Router{
		app:            app,
		config:         cfg,
		esignHandler:   esignHandler,
		healthHandler:  healthHandler,
		webhookHandler: webhookHandler,
		logHandler:     logHandler,
	}
}

func (r *Router) Setup() *fiber.App {
	// Middleware
	r.app.Use(recover.New())
	r.app.Use(requestid.New())
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	if r.config.IsDevelopment() {
		r.app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	// Health check route
	r.app.Get("/health", r.healthHandler.Health)

	// Webhook routes (at root level for external callbacks)
	r.app.Post("/webhook/clicksign", r.webhookHandler.ClicksignCallback)

	// API v1 routes
	api := r.app.Group("/api/v1")
	{
		// Clicksign routes
		cs := api.Group("/clicksign")
		{
			cs.Post("/documents", r.esignHandler.CreateDocument)
			cs.Get("/documents/:key", r.esignHandler.GetDocument)
			cs.Post("/signers", r.esignHandler.CreateSigner)
			cs.Post("/lists", r.esignHandler.AddSignerToDocument)
			cs.Post("/notifications", r.esignHandler.RequestSigningByEmail)
		}

		// Log routes
		logs := api.Group("/logs")
		{
			logs.Get("", r.logHandler.GetLogs)
			logs.Get("/search", r.logHandler.SearchLogs)
		}
	}

	return r.app
}

func (r *Router) GetApp() *fiber.App {
	return r.app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(entity.NewErrorResponse(errorCode(code), err.Error()))
}

func errorCode(code int) string {
	switch code {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}
