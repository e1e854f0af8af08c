package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/marian079/crusty-kiosk/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder persists an order and its line items in one transaction.
// The ticket number comes from the order_number_seq sequence, so it stays
// unique and strictly increasing under concurrent writers and after
// deletions. On any failure the deferred rollback leaves no partial state.
func (r *OrderRepository) CreateOrder(ctx context.Context, params model.OrderParams, itemParams []model.OrderItemParams) (*model.Order, []model.OrderItem, error) {
	if len(itemParams) == 0 {
		return nil, nil, errors.New("order must contain at least one item")
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	order := model.Order{
		ID:            uuid.NewString(),
		CustomerName:  params.CustomerName,
		PaymentMethod: params.PaymentMethod,
		Total:         params.Total,
		Status:        model.OrderStatusPending,
	}

	if err := tx.QueryRow(ctx, `SELECT nextval('order_number_seq')`).Scan(&order.OrderNumber); err != nil {
		return nil, nil, fmt.Errorf("next order number: %w", err)
	}

	query := `
		INSERT INTO orders (id, order_number, customer_name, payment_method, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING created_at
	`
	if err := tx.QueryRow(ctx, query,
		order.ID, order.OrderNumber, order.CustomerName, order.PaymentMethod, order.Total, order.Status,
	).Scan(&order.CreatedAt); err != nil {
		return nil, nil, fmt.Errorf("insert order: %w", err)
	}

	items := make([]model.OrderItem, 0, len(itemParams))
	for _, ip := range itemParams {
		item := model.OrderItem{
			ID:           uuid.NewString(),
			OrderID:      order.ID,
			ProductID:    ip.ProductID,
			ProductName:  ip.ProductName,
			ProductPrice: ip.ProductPrice,
			Quantity:     ip.Quantity,
		}
		query := `
			INSERT INTO order_items (id, order_id, product_id, product_name, product_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		if _, err := tx.Exec(ctx, query,
			item.ID, item.OrderID, item.ProductID, item.ProductName, item.ProductPrice, item.Quantity,
		); err != nil {
			return nil, nil, fmt.Errorf("insert order item: %w", err)
		}
		items = append(items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit tx: %w", err)
	}
	return &order, items, nil
}

// ListOrders returns all orders, newest first.
func (r *OrderRepository) ListOrders(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, order_number, customer_name, payment_method, total::text, status, created_at
		FROM orders ORDER BY created_at DESC, order_number DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.PaymentMethod, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrderRepository) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	query := `
		SELECT id, order_number, customer_name, payment_method, total::text, status, created_at
		FROM orders WHERE id=$1
	`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&o.ID, &o.OrderNumber, &o.CustomerName, &o.PaymentMethod, &o.Total, &o.Status, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, product_price::text, quantity
		FROM order_items WHERE order_id=$1
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var out []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.ProductPrice, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
