package postgres

import (
	"context"

	"byteBrosStore/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// CreateOrder persists the order header and all of its line items as one
// transaction. Begin reserves a dedicated connection for the whole call;
// every exit path ends in Commit or Rollback, which releases it back to
// the pool. Readers see either the complete order or nothing.
func (r *OrdersRepository) CreateOrder(ctx context.Context, order *domain.Order, items []domain.OrderItem) (uint, error) {
	tx := r.DB.WithContext(ctx).Begin()
	if tx.Error != nil {
		return 0, tx.Error
	}

	defer func() {
		if rec := recover(); rec != nil {
			tx.Rollback()
			panic(rec)
		}
	}()

	if err := tx.Create(order).Error; err != nil {
		tx.Rollback()
		return 0, err
	}

	// Line items are inserted strictly in cart order, all referencing the
	// generated header id. The first failure aborts the loop.
	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return 0, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return 0, err
	}

	return order.ID, nil
}

func (r *OrdersRepository) FindByCustomer(ctx context.Context, email string) ([]domain.Order, error) {
	var orders []domain.Order

	err := r.DB.WithContext(ctx).
		Where("cliente_email = ?", email).
		Order("data_pedido DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *OrdersRepository) FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	var items []domain.OrderItem

	err := r.DB.WithContext(ctx).
		Where("pedido_id = ?", orderID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}
