package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/marian079/crusty-kiosk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *MemStore {
	t.Helper()
	store := NewMemStore()
	err := store.Seed(
		[]model.Category{
			{ID: "burgers", Name: "Burgers", Icon: "Beef"},
			{ID: "sides", Name: "Sides", Icon: "Salad"},
		},
		[]model.Product{
			{ID: "b1", Name: "Cheeseburger", Description: "with cheddar", Price: "24.99", CategoryID: "burgers"},
			{ID: "b2", Name: "Double Burger", Description: "two patties", Price: "34.99", CategoryID: "burgers"},
			{ID: "s1", Name: "French Fries", Description: "large portion", Price: "9.99", CategoryID: "sides"},
		},
	)
	require.NoError(t, err)
	return store
}

func cheeseburgerOrder() (model.OrderParams, []model.OrderItemParams) {
	return model.OrderParams{CustomerName: "Ana", PaymentMethod: model.PaymentMethodCash, Total: "49.98"},
		[]model.OrderItemParams{
			{ProductID: "b1", ProductName: "Cheeseburger", ProductPrice: "24.99", Quantity: 2},
		}
}

func TestSeed(t *testing.T) {
	t.Run("Rejects product with unknown category", func(t *testing.T) {
		store := NewMemStore()
		err := store.Seed(nil, []model.Product{{ID: "x", CategoryID: "ghost"}})
		assert.Error(t, err)
	})

	t.Run("Rejects duplicate ids", func(t *testing.T) {
		store := NewMemStore()
		err := store.Seed([]model.Category{{ID: "a"}, {ID: "a"}}, nil)
		assert.Error(t, err)
	})
}

func TestListProducts(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	t.Run("Filters by category", func(t *testing.T) {
		list, err := store.ListProducts(ctx, "burgers")
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, p := range list {
			assert.Equal(t, "burgers", p.CategoryID)
		}
	})

	t.Run("Unknown category yields empty list", func(t *testing.T) {
		list, err := store.ListProducts(ctx, "desserts")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("No filter returns everything", func(t *testing.T) {
		list, err := store.ListProducts(ctx, "")
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})
}

func TestLookupMisses(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	_, err := store.GetCategory(ctx, "desserts")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetProduct(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetOrder(ctx, "nonexistent-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrder(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	params, itemParams := cheeseburgerOrder()
	order, items, err := store.CreateOrder(ctx, params, itemParams)

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, int64(1), order.OrderNumber)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "49.98", order.Total)
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, items, 1)
	assert.Equal(t, order.ID, items[0].OrderID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "24.99", items[0].ProductPrice)

	t.Run("Second order gets the next number", func(t *testing.T) {
		second, _, err := store.CreateOrder(ctx, params, itemParams)
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.OrderNumber)
	})

	t.Run("Items are fetchable by order id", func(t *testing.T) {
		got, err := store.GetOrderItems(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, items[0].ID, got[0].ID)
	})
}

func TestCreateOrderRejectsInvalidInput(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	params, _ := cheeseburgerOrder()

	cases := []struct {
		name  string
		items []model.OrderItemParams
	}{
		{"empty items", nil},
		{"zero quantity", []model.OrderItemParams{{ProductID: "b1", ProductName: "Cheeseburger", ProductPrice: "24.99", Quantity: 0}}},
		{"missing product fields", []model.OrderItemParams{{Quantity: 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := store.CreateOrder(ctx, params, tc.items)
			require.Error(t, err)

			// nothing may be left behind
			orders, lerr := store.ListOrders(ctx)
			require.NoError(t, lerr)
			assert.Empty(t, orders)
		})
	}

	t.Run("Failed creates do not consume order numbers", func(t *testing.T) {
		_, itemParams := cheeseburgerOrder()
		order, _, err := store.CreateOrder(ctx, params, itemParams)
		require.NoError(t, err)
		assert.Equal(t, int64(1), order.OrderNumber)
	})
}

func TestListOrdersNewestFirst(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	params, itemParams := cheeseburgerOrder()

	for i := 0; i < 3; i++ {
		_, _, err := store.CreateOrder(ctx, params, itemParams)
		require.NoError(t, err)
	}

	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, int64(3), orders[0].OrderNumber)
	assert.Equal(t, int64(2), orders[1].OrderNumber)
	assert.Equal(t, int64(1), orders[2].OrderNumber)
}

func TestOrderNumbersUniqueUnderConcurrency(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	params, itemParams := cheeseburgerOrder()

	const writers = 50
	var wg sync.WaitGroup
	numbers := make(chan int64, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, _, err := store.CreateOrder(ctx, params, itemParams)
			if err != nil {
				t.Error(err)
				return
			}
			numbers <- order.OrderNumber
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[int64]bool)
	for n := range numbers {
		assert.False(t, seen[n], "order number %d assigned twice", n)
		seen[n] = true
	}
	require.Len(t, seen, writers)
	for n := int64(1); n <= writers; n++ {
		assert.True(t, seen[n], "order number %d never assigned", n)
	}

	// every order is fully readable with its items
	orders, err := store.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, writers)
	for _, o := range orders {
		items, err := store.GetOrderItems(ctx, o.ID)
		require.NoError(t, err)
		assert.Len(t, items, 1, "order %d missing its items", o.OrderNumber)
	}
}

func TestOrderItemsSnapshotProduct(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	params, itemParams := cheeseburgerOrder()

	order, _, err := store.CreateOrder(ctx, params, itemParams)
	require.NoError(t, err)

	// reprice and rename the product after the order was placed
	require.NoError(t, store.UpdateProduct(ctx, model.Product{
		ID: "b1", Name: "Mega Cheeseburger", Description: "with cheddar", Price: "27.49", CategoryID: "burgers",
	}))

	items, err := store.GetOrderItems(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cheeseburger", items[0].ProductName)
	assert.Equal(t, "24.99", items[0].ProductPrice)

	p, err := store.GetProduct(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "27.49", p.Price)
}

func TestDefaultCatalog(t *testing.T) {
	categories, products := DefaultCatalog()

	store := NewMemStore()
	require.NoError(t, store.Seed(categories, products))

	assert.Len(t, categories, 4)
	assert.Len(t, products, 23)

	// every product resolves to a category (Seed enforces it; spot-check one)
	list, err := store.ListProducts(context.Background(), "burgers")
	require.NoError(t, err)
	assert.Len(t, list, 6)
}

func TestGetOrderItemsEmptyForUnknownOrder(t *testing.T) {
	store := seededStore(t)
	items, err := store.GetOrderItems(context.Background(), fmt.Sprintf("no-such-%d", 1))
	require.NoError(t, err)
	assert.Empty(t, items)
}
