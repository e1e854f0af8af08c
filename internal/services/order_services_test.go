package services

import (
	"context"
	"errors"
	"testing"

	"github.com/marian079/crusty-kiosk/internal/model"
	"github.com/marian079/crusty-kiosk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	store := repository.NewMemStore()
	err := store.Seed(
		[]model.Category{{ID: "burgers", Name: "Burgers", Icon: "Beef"}},
		[]model.Product{{ID: "b1", Name: "Cheeseburger", Description: "with cheddar", Price: "24.99", CategoryID: "burgers"}},
	)
	require.NoError(t, err)
	return NewOrderService(store)
}

func checkoutRequest() *model.CreateOrderRequest {
	return &model.CreateOrderRequest{
		CustomerName:  "Ana",
		PaymentMethod: model.PaymentMethodCash,
		Total:         "49.98",
		Items: []model.OrderItemRequest{
			{ProductID: "b1", ProductName: "Cheeseburger", ProductPrice: "24.99", Quantity: "2"},
		},
	}
}

func TestPlace(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		order, err := svc.Place(ctx, checkoutRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(1), order.OrderNumber)
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, "Ana", order.CustomerName)
		assert.Equal(t, "49.98", order.Total)
	})

	t.Run("Consecutive orders get consecutive numbers", func(t *testing.T) {
		order, err := svc.Place(ctx, checkoutRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(2), order.OrderNumber)
	})

	t.Run("Empty customer name gets the placeholder", func(t *testing.T) {
		req := checkoutRequest()
		req.CustomerName = "  "

		order, err := svc.Place(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCustomerName, order.CustomerName)
	})

	t.Run("Card is accepted by the core", func(t *testing.T) {
		req := checkoutRequest()
		req.PaymentMethod = model.PaymentMethodCard

		order, err := svc.Place(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, model.PaymentMethodCard, order.PaymentMethod)
	})

	t.Run("Rejects empty items and creates nothing", func(t *testing.T) {
		before, err := svc.List(ctx)
		require.NoError(t, err)

		req := checkoutRequest()
		req.Items = nil

		_, err = svc.Place(ctx, req)
		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)

		after, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})
}

func TestGet(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	placed, err := svc.Place(ctx, checkoutRequest())
	require.NoError(t, err)

	t.Run("Returns order with its items", func(t *testing.T) {
		got, err := svc.Get(ctx, placed.ID)

		require.NoError(t, err)
		assert.Equal(t, placed.ID, got.Order.ID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, placed.ID, got.Items[0].OrderID)
		assert.Equal(t, 2, got.Items[0].Quantity)
	})

	t.Run("Unknown id is a not-found", func(t *testing.T) {
		_, err := svc.Get(ctx, "nonexistent-id")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestList(t *testing.T) {
	svc := newOrderService(t)
	ctx := context.Background()

	first, err := svc.Place(ctx, checkoutRequest())
	require.NoError(t, err)
	second, err := svc.Place(ctx, checkoutRequest())
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

// failingStore verifies store errors pass through Place untouched.
type failingStore struct {
	OrderStore
}

var errStore = errors.New("store is down")

func (f *failingStore) CreateOrder(ctx context.Context, params model.OrderParams, items []model.OrderItemParams) (*model.Order, []model.OrderItem, error) {
	return nil, nil, errStore
}

func TestPlaceStoreFailure(t *testing.T) {
	svc := NewOrderService(&failingStore{})

	_, err := svc.Place(context.Background(), checkoutRequest())

	require.ErrorIs(t, err, errStore)
	var verr *model.ValidationError
	assert.False(t, errors.As(err, &verr))
}
