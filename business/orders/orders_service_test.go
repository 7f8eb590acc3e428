package orders

import (
	"context"
	"errors"
	"testing"

	"byteBrosStore/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrdersRepo struct {
	createCalls int
	gotOrder    *domain.Order
	gotItems    []domain.OrderItem
	failWith    error
	orders      []domain.Order
	itemsByID   map[uint][]domain.OrderItem
}

func (f *fakeOrdersRepo) CreateOrder(_ context.Context, order *domain.Order, items []domain.OrderItem) (uint, error) {
	f.createCalls++
	if f.failWith != nil {
		return 0, f.failWith
	}
	order.ID = 7
	f.gotOrder = order
	f.gotItems = items
	return order.ID, nil
}

func (f *fakeOrdersRepo) FindByCustomer(_ context.Context, email string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.CustomerEmail == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) FindItems(_ context.Context, orderID uint) ([]domain.OrderItem, error) {
	return f.itemsByID[orderID], nil
}

func validItems() []domain.OrderItem {
	return []domain.OrderItem{
		{ProductID: 1, ProductName: "Mouse", Quantity: 2, UnitPrice: 50},
		{ProductID: 3, ProductName: "Teclado", Quantity: 1, UnitPrice: 120},
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	repo := &fakeOrdersRepo{}
	svc := NewOrdersService(repo)

	orderID, err := svc.CreateOrder(context.Background(), "joao@x.com", domain.Order{
		DeliveryAddress: "Rua A, 1",
		TotalValue:      220,
		PaymentMethod:   "pix",
	}, validItems())
	require.NoError(t, err)
	assert.Equal(t, uint(7), orderID)

	require.NotNil(t, repo.gotOrder)
	assert.Equal(t, "joao@x.com", repo.gotOrder.CustomerEmail)
	assert.False(t, repo.gotOrder.OrderedAt.IsZero())
	require.Len(t, repo.gotItems, 2)
	assert.Equal(t, "Mouse", repo.gotItems[0].ProductName)
	assert.Equal(t, "Teclado", repo.gotItems[1].ProductName)
}

func TestCreateOrderIgnoresPayloadEmail(t *testing.T) {
	repo := &fakeOrdersRepo{}
	svc := NewOrdersService(repo)

	_, err := svc.CreateOrder(context.Background(), "claims@x.com", domain.Order{
		CustomerEmail: "attacker@x.com",
		TotalValue:    100,
	}, validItems())
	require.NoError(t, err)

	assert.Equal(t, "claims@x.com", repo.gotOrder.CustomerEmail)
}

func TestCreateOrderEmptyCartFailsBeforeStore(t *testing.T) {
	repo := &fakeOrdersRepo{}
	svc := NewOrdersService(repo)

	_, err := svc.CreateOrder(context.Background(), "joao@x.com", domain.Order{TotalValue: 100}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, repo.createCalls)
}

func TestCreateOrderRejectsBadItems(t *testing.T) {
	repo := &fakeOrdersRepo{}
	svc := NewOrdersService(repo)

	_, err := svc.CreateOrder(context.Background(), "joao@x.com", domain.Order{TotalValue: 100}, []domain.OrderItem{
		{ProductID: 1, ProductName: "Mouse", Quantity: 0, UnitPrice: 50},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateOrder(context.Background(), "joao@x.com", domain.Order{TotalValue: 100}, []domain.OrderItem{
		{ProductID: 1, ProductName: "Mouse", Quantity: 1, UnitPrice: -10},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Zero(t, repo.createCalls)
}

func TestCreateOrderMissingEmail(t *testing.T) {
	repo := &fakeOrdersRepo{}
	svc := NewOrdersService(repo)

	_, err := svc.CreateOrder(context.Background(), "", domain.Order{TotalValue: 100}, validItems())
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, repo.createCalls)
}

func TestCreateOrderStoreFailureIsGeneric(t *testing.T) {
	repo := &fakeOrdersRepo{failWith: errors.New("pq: deadlock detected")}
	svc := NewOrdersService(repo)

	_, err := svc.CreateOrder(context.Background(), "joao@x.com", domain.Order{TotalValue: 100}, validItems())
	assert.ErrorIs(t, err, domain.ErrOrderCreation)
	assert.NotContains(t, err.Error(), "deadlock")
}

func TestListByCustomer(t *testing.T) {
	repo := &fakeOrdersRepo{
		orders: []domain.Order{
			{ID: 1, CustomerEmail: "joao@x.com", TotalValue: 100},
			{ID: 2, CustomerEmail: "maria@x.com", TotalValue: 50},
		},
		itemsByID: map[uint][]domain.OrderItem{
			1: {{OrderID: 1, ProductName: "Mouse", Quantity: 2, UnitPrice: 50}},
		},
	}
	svc := NewOrdersService(repo)

	orders, err := svc.ListByCustomer(context.Background(), "joao@x.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(1), orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Mouse", orders[0].Items[0].ProductName)
}
