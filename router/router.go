package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "after-school-api/errors"
	"after-school-api/handlers"
	"after-school-api/middleware"
)

type Handlers struct {
	Lessons *handlers.LessonHandler
	Orders  *handlers.OrderHandler
	Images  *handlers.ImageHandler
}

// New builds the fiber app with the full middleware chain and route table.
func New(h Handlers, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: newErrorHandler(logger),
	})

	SetupRoutes(app, h, logger)

	return app
}

func SetupRoutes(app *fiber.App, h Handlers, logger *zap.Logger) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", handlers.Health)

	app.Get("/lessons", h.Lessons.GetLessons)
	app.Put("/lessons/:id", h.Lessons.UpdateLesson)
	app.Get("/search", h.Lessons.SearchLessons)

	app.Post("/orders", h.Orders.CreateOrder)

	app.Get("/images/:filename", h.Images.GetImage)

	// terminal catch-all: anything unrouted is a JSON 404
	app.Use(func(c *fiber.Ctx) error {
		return apierrors.RaiseNotFoundError(c, "Resource not found")
	})
}

// newErrorHandler turns any error that escapes a handler into the generic
// fault response, details kept server-side.
func newErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger.Error("unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return apierrors.RaiseError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
