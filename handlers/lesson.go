package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"after-school-api/database"
	apierrors "after-school-api/errors"
	"after-school-api/service"
)

// LessonHandler serves the catalog surface: listing, search and direct edits.
type LessonHandler struct {
	queries *service.QueryService
	lessons *service.LessonService
	logger  *zap.Logger
}

func NewLessonHandler(queries *service.QueryService, lessons *service.LessonService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{queries: queries, lessons: lessons, logger: logger}
}

func (h *LessonHandler) GetLessons(c *fiber.Ctx) error {
	lessons, err := h.queries.List(c.UserContext())
	if err != nil {
		h.logger.Error("lesson listing failed", zap.Error(err))
		return apierrors.RaiseInternalServerError(c)
	}

	return c.JSON(lessons)
}

func (h *LessonHandler) SearchLessons(c *fiber.Ctx) error {
	term := c.Query("q")

	lessons, err := h.queries.Search(c.UserContext(), term)
	if err != nil {
		h.logger.Error("lesson search failed", zap.String("term", term), zap.Error(err))
		return apierrors.RaiseInternalServerError(c)
	}

	return c.JSON(lessons)
}

func (h *LessonHandler) UpdateLesson(c *fiber.Ctx) error {
	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		h.logger.Warn("failed to parse lesson update body", zap.Error(err))
		return apierrors.RaiseBadRequestError(c, "request body must be a JSON object")
	}

	ref := database.ParseLessonRef(c.Params("id"))

	err := h.lessons.Update(c.UserContext(), ref, fields)
	switch {
	case errors.Is(err, service.ErrNoUpdatableFields):
		return apierrors.RaiseBadRequestError(c, err.Error())
	case errors.Is(err, service.ErrLessonNotFound):
		return apierrors.RaiseNotFoundError(c, "Lesson not found")
	case err != nil:
		h.logger.Error("lesson update failed", zap.String("lesson", ref.String()), zap.Error(err))
		return apierrors.RaiseInternalServerError(c)
	}

	return c.JSON(fiber.Map{"message": "Lesson updated"})
}
