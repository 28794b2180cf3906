package service

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"after-school-api/database"
	"after-school-api/model"
)

// ErrInvalidOrder rejects an order before anything is written.
var ErrInvalidOrder = errors.New("order is missing required fields")

// OrderService persists orders and spends lesson capacity.
type OrderService struct {
	orders  database.OrderStore
	lessons database.LessonStore
	logger  *zap.Logger
}

func NewOrderService(orders database.OrderStore, lessons database.LessonStore, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, lessons: lessons, logger: logger}
}

// PlaceOrder stores the order exactly as submitted, then decrements the
// spaces of every referenced lesson by the requested quantity. The insert and
// the per-line decrements are separate store operations issued without a
// transaction: once the insert has succeeded the order stands, and a failed
// decrement is logged server-side rather than surfaced to the caller.
func (s *OrderService) PlaceOrder(ctx context.Context, order model.Order) (primitive.ObjectID, error) {
	if order.Name == "" || order.Phone == "" || order.LessonIDs == nil {
		return primitive.NilObjectID, ErrInvalidOrder
	}

	order.Id = primitive.NewObjectID()
	if err := s.orders.Insert(ctx, order); err != nil {
		return primitive.NilObjectID, err
	}

	var wg sync.WaitGroup
	for _, line := range order.LessonIDs {
		qty := parseQty(line.Qty)
		if qty <= 0 {
			// zero or unparseable quantity: line is kept on the order
			// document but spends no capacity
			continue
		}

		ref := database.ParseLessonRef(line.LessonId)

		wg.Add(1)
		go func(ref database.LessonRef, qty int64) {
			defer wg.Done()

			matched, err := s.lessons.DecrementSpaces(ctx, ref, qty)
			if err != nil {
				s.logger.Error("space decrement failed",
					zap.String("order", order.Id.Hex()),
					zap.String("lesson", ref.String()),
					zap.Int64("qty", qty),
					zap.Error(err))
				return
			}
			if matched == 0 {
				s.logger.Warn("order references unknown lesson",
					zap.String("order", order.Id.Hex()),
					zap.String("lesson", ref.String()))
			}
		}(ref, qty)
	}
	wg.Wait()

	return order.Id, nil
}

func parseQty(value interface{}) int64 {
	switch qty := value.(type) {
	case float64:
		return int64(qty)
	case int:
		return int64(qty)
	case int32:
		return int64(qty)
	case int64:
		return qty
	case string:
		n, err := strconv.ParseFloat(qty, 64)
		if err != nil {
			return 0
		}
		return int64(n)
	default:
		return 0
	}
}
