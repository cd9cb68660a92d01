package service

import (
	"context"
	"fmt"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

type OrderService struct {
	orders *repository.OrderRepository
}

func NewOrderService(orders *repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.orders.List(ctx)
}

// UpdateStatus sets the order status after checking membership in the
// fixed enumeration. Invalid values never reach the database.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, status)
	}
	return s.orders.UpdateStatus(ctx, id, status)
}
