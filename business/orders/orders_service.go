package orders

import (
	"context"
	"fmt"
	"time"

	"byteBrosStore/domain"
	"byteBrosStore/pkg/logger"
)

type OrdersRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) (uint, error)
	FindByCustomer(ctx context.Context, email string) ([]domain.Order, error)
	FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type OrdersService struct {
	orderRepo OrdersRepository
}

func NewOrdersService(orderRepo OrdersRepository) *OrdersService {
	return &OrdersService{
		orderRepo: orderRepo,
	}
}

// CreateOrder validates the cart before any connection is taken, then
// hands the header and line items to the repository as one unit of work.
// The customer email comes from the verified claims, never the payload.
func (s *OrdersService) CreateOrder(ctx context.Context, customerEmail string, order domain.Order, items []domain.OrderItem) (uint, error) {
	if customerEmail == "" {
		return 0, fmt.Errorf("%w: missing customer email", domain.ErrValidation)
	}

	if len(items) == 0 {
		return 0, fmt.Errorf("%w: order has no items", domain.ErrValidation)
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: item quantity must be positive", domain.ErrValidation)
		}
		if item.UnitPrice < 0 {
			return 0, fmt.Errorf("%w: item unit price cannot be negative", domain.ErrValidation)
		}
	}

	order.CustomerEmail = customerEmail
	order.OrderedAt = time.Now()

	orderID, err := s.orderRepo.CreateOrder(ctx, &order, items)
	if err != nil {
		logger.Error("Failed to create order", err)
		// Internal detail stays server-side; callers get a generic failure.
		return 0, domain.ErrOrderCreation
	}

	return orderID, nil
}

// ListByCustomer returns the customer's orders, newest first, with the
// line items of each attached.
func (s *OrdersService) ListByCustomer(ctx context.Context, email string) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindByCustomer(ctx, email)
	if err != nil {
		logger.Error("Failed to list orders", err)
		return nil, err
	}

	for i := range orders {
		items, err := s.orderRepo.FindItems(ctx, orders[i].ID)
		if err != nil {
			logger.Error("Failed to list order items", err)
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}
