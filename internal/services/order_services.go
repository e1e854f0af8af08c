package services

import (
	"context"

	"github.com/marian079/crusty-kiosk/internal/model"
)

// OrderStore is the storage contract for order placement and lookup.
// CreateOrder must assign the id and ticket number itself and persist the
// order together with its items all-or-nothing.
type OrderStore interface {
	CreateOrder(ctx context.Context, params model.OrderParams, items []model.OrderItemParams) (*model.Order, []model.OrderItem, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error)
}

// OrderWithItems is returned when fetching a single order.
type OrderWithItems struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

// OrderService is the boundary between the untrusted checkout payload and
// the storage engine.
type OrderService struct {
	Repo OrderStore
}

func NewOrderService(r OrderStore) *OrderService {
	return &OrderService{Repo: r}
}

// Place validates and normalizes the checkout payload, then creates the
// order and its line items in one store call. A *model.ValidationError is
// returned for malformed payloads; the caller-supplied total is kept as
// submitted (the kiosk client computes it from the cart).
func (s *OrderService) Place(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	params, items, err := model.ValidateOrderRequest(req)
	if err != nil {
		return nil, err
	}

	if params.CustomerName == "" {
		params.CustomerName = model.DefaultCustomerName
	}

	order, _, err := s.Repo.CreateOrder(ctx, *params, items)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// List returns every order, newest first.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.Repo.ListOrders(ctx)
}

// Get returns one order joined with its line items.
func (s *OrderService) Get(ctx context.Context, id string) (*OrderWithItems, error) {
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.OrderItem{}
	}
	return &OrderWithItems{Order: *order, Items: items}, nil
}
