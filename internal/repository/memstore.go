package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/marian079/crusty-kiosk/internal/model"

	"github.com/google/uuid"
)

// MemStore is the in-memory storage engine, used when no database is
// configured and by the test suites. All collections live behind one
// mutex; CreateOrder assigns the ticket number and commits the order
// together with its items inside a single critical section, so readers
// never observe a partially written order and numbers never repeat.
type MemStore struct {
	mu          sync.RWMutex
	categories  map[string]model.Category
	products    map[string]model.Product
	orders      map[string]model.Order
	orderItems  map[string]model.OrderItem
	orderNumber int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		categories: make(map[string]model.Category),
		products:   make(map[string]model.Product),
		orders:     make(map[string]model.Order),
		orderItems: make(map[string]model.OrderItem),
	}
}

// Seed loads a catalog. Products must reference a seeded category.
func (s *MemStore) Seed(categories []model.Category, products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range categories {
		if _, ok := s.categories[c.ID]; ok {
			return fmt.Errorf("duplicate category %q", c.ID)
		}
		s.categories[c.ID] = c
	}
	for _, p := range products {
		if _, ok := s.categories[p.CategoryID]; !ok {
			return fmt.Errorf("product %q references unknown category %q", p.ID, p.CategoryID)
		}
		if _, ok := s.products[p.ID]; ok {
			return fmt.Errorf("duplicate product %q", p.ID)
		}
		s.products[p.ID] = p
	}
	return nil
}

func (s *MemStore) ListCategories(ctx context.Context) ([]model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemStore) ListProducts(ctx context.Context, categoryID string) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// UpdateProduct replaces a product's display fields. Placed orders keep
// their snapshot of name and price and are not touched.
func (s *MemStore) UpdateProduct(ctx context.Context, p model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; !ok {
		return ErrNotFound
	}
	if _, ok := s.categories[p.CategoryID]; !ok {
		return fmt.Errorf("product %q references unknown category %q", p.ID, p.CategoryID)
	}
	s.products[p.ID] = p
	return nil
}

func (s *MemStore) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// CreateOrder stages the order and every line item, then commits them all
// while still holding the lock. Input is checked before the first map
// write, so a failed call leaves no partial state.
func (s *MemStore) CreateOrder(ctx context.Context, params model.OrderParams, itemParams []model.OrderItemParams) (*model.Order, []model.OrderItem, error) {
	if len(itemParams) == 0 {
		return nil, nil, errors.New("order must contain at least one item")
	}
	for _, ip := range itemParams {
		if ip.ProductID == "" || ip.ProductName == "" || ip.ProductPrice == "" {
			return nil, nil, errors.New("order item is missing product fields")
		}
		if ip.Quantity < 1 {
			return nil, nil, errors.New("order item quantity must be at least 1")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orderNumber++
	order := model.Order{
		ID:            uuid.NewString(),
		OrderNumber:   s.orderNumber,
		CustomerName:  params.CustomerName,
		PaymentMethod: params.PaymentMethod,
		Total:         params.Total,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	items := make([]model.OrderItem, 0, len(itemParams))
	for _, ip := range itemParams {
		items = append(items, model.OrderItem{
			ID:           uuid.NewString(),
			OrderID:      order.ID,
			ProductID:    ip.ProductID,
			ProductName:  ip.ProductName,
			ProductPrice: ip.ProductPrice,
			Quantity:     ip.Quantity,
		})
	}

	s.orders[order.ID] = order
	for _, it := range items {
		s.orderItems[it.ID] = it
	}
	return &order, items, nil
}

func (s *MemStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	// newest first; order numbers break ties between same-instant creations
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].OrderNumber > out[j].OrderNumber
	})
	return out, nil
}

func (s *MemStore) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (s *MemStore) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.OrderItem
	for _, it := range s.orderItems {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
