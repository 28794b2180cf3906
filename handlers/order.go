package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apierrors "after-school-api/errors"
	"after-school-api/model"
	"after-school-api/service"
)

// OrderHandler serves order placement.
type OrderHandler struct {
	orders   *service.OrderService
	validate *validator.Validate
	logger   *zap.Logger
}

func NewOrderHandler(orders *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		validate: validator.New(),
		logger:   logger,
	}
}

// orderRequest carries the order payload. The numberOfSpace pointer and the
// nil-ness of the lessonIDs slice distinguish absent fields from zero values;
// line-item contents stay loosely typed on purpose (see model.OrderLine).
type orderRequest struct {
	Name          string            `json:"name" validate:"required"`
	Phone         string            `json:"phone" validate:"required"`
	LessonIDs     []model.OrderLine `json:"lessonIDs" validate:"required"`
	NumberOfSpace *int64            `json:"numberOfSpace" validate:"required"`
}

func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	input := new(orderRequest)
	if err := c.BodyParser(input); err != nil {
		h.logger.Warn("failed to parse order body", zap.Error(err))
		return apierrors.RaiseBadRequestError(c, "invalid order payload")
	}

	if err := h.validate.Struct(input); err != nil {
		return apierrors.RaiseBadRequestError(c, "name, phone, lessonIDs and numberOfSpace are required")
	}

	order := model.Order{
		Name:          input.Name,
		Phone:         input.Phone,
		LessonIDs:     input.LessonIDs,
		NumberOfSpace: *input.NumberOfSpace,
	}

	orderId, err := h.orders.PlaceOrder(c.UserContext(), order)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			return apierrors.RaiseBadRequestError(c, err.Error())
		}
		h.logger.Error("order insert failed", zap.Error(err))
		return apierrors.RaiseInternalServerError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created",
		"orderId": orderId.Hex(),
	})
}
