package model

import "time"

// Order statuses. Orders are created as pending; the kiosk defines no
// transition workflow, the remaining values exist for the kitchen screens.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
)

// Payment methods accepted by the schema. Card is disabled in the UI only.
const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// DefaultCustomerName is stored when the customer leaves the name empty.
const DefaultCustomerName = "Client"

// Order represents an entry in the orders table. OrderNumber is the
// human-facing ticket number, assigned by the store at creation time.
type Order struct {
	ID            string    `json:"id"`
	OrderNumber   int64     `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	PaymentMethod string    `json:"paymentMethod"`
	Total         string    `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderItem is one line of a placed order. ProductName and ProductPrice
// snapshot the product at order time so later catalog edits do not
// rewrite order history.
type OrderItem struct {
	ID           string `json:"id"`
	OrderID      string `json:"orderId"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductPrice string `json:"productPrice"`
	Quantity     int    `json:"quantity"`
}

// OrderParams carries the caller-supplied order fields into the store,
// which assigns id, order number, status and timestamp itself.
type OrderParams struct {
	CustomerName  string
	PaymentMethod string
	Total         string
}

// OrderItemParams carries one validated line item into the store.
type OrderItemParams struct {
	ProductID    string
	ProductName  string
	ProductPrice string
	Quantity     int
}
