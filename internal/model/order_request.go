package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexString accepts either a JSON string or a JSON number, so kiosk
// clients may send prices and quantities in whichever form they hold them.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	// bare number token, keep its textual form
	*f = FlexString(b)
	return nil
}

// CreateOrderRequest is the untrusted POST /api/orders payload.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName"`
	PaymentMethod string             `json:"paymentMethod"`
	Total         FlexString         `json:"total"`
	Items         []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one cart line as submitted by the client.
type OrderItemRequest struct {
	ProductID    string     `json:"productId"`
	ProductName  string     `json:"productName"`
	ProductPrice FlexString `json:"productPrice"`
	Quantity     FlexString `json:"quantity"`
}

// FieldError describes a single payload violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in an order payload.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "invalid order payload: " + strings.Join(msgs, "; ")
}

// ValidateOrderRequest checks an order payload and coerces it into store
// params: quantities become integers, prices and the total become
// canonical two-digit decimal strings. All violations are collected into
// one ValidationError rather than failing on the first.
func ValidateOrderRequest(req *CreateOrderRequest) (*OrderParams, []OrderItemParams, error) {
	var verr ValidationError

	if strings.TrimSpace(req.PaymentMethod) == "" {
		verr.Errors = append(verr.Errors, FieldError{Field: "paymentMethod", Message: "payment method is required"})
	}

	total, err := canonicalPrice(string(req.Total))
	if err != nil {
		verr.Errors = append(verr.Errors, FieldError{Field: "total", Message: err.Error()})
	}

	if len(req.Items) == 0 {
		verr.Errors = append(verr.Errors, FieldError{Field: "items", Message: "order must contain at least one item"})
	}

	items := make([]OrderItemParams, 0, len(req.Items))
	for i, it := range req.Items {
		prefix := fmt.Sprintf("items[%d]", i)

		if strings.TrimSpace(it.ProductID) == "" {
			verr.Errors = append(verr.Errors, FieldError{Field: prefix + ".productId", Message: "product id is required"})
		}
		if strings.TrimSpace(it.ProductName) == "" {
			verr.Errors = append(verr.Errors, FieldError{Field: prefix + ".productName", Message: "product name is required"})
		}

		price, err := canonicalPrice(string(it.ProductPrice))
		if err != nil {
			verr.Errors = append(verr.Errors, FieldError{Field: prefix + ".productPrice", Message: err.Error()})
		}

		qty, err := parseQuantity(string(it.Quantity))
		if err != nil {
			verr.Errors = append(verr.Errors, FieldError{Field: prefix + ".quantity", Message: err.Error()})
		}

		items = append(items, OrderItemParams{
			ProductID:    strings.TrimSpace(it.ProductID),
			ProductName:  strings.TrimSpace(it.ProductName),
			ProductPrice: price,
			Quantity:     qty,
		})
	}

	if len(verr.Errors) > 0 {
		return nil, nil, &verr
	}

	order := &OrderParams{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		Total:         total,
	}
	return order, items, nil
}

// canonicalPrice parses a decimal amount and renders it with exactly two
// fractional digits.
func canonicalPrice(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", fmt.Errorf("amount %q is not a valid decimal", s)
	}
	if d.IsNegative() {
		return "", fmt.Errorf("amount must not be negative")
	}
	return d.StringFixed(2), nil
}

// parseQuantity accepts integer-valued tokens ("2", "2.0", 2) and rejects
// everything below one.
func parseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("quantity is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not a number", s)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("quantity must be a whole number")
	}
	q := int(d.IntPart())
	if q < 1 {
		return 0, fmt.Errorf("quantity must be at least 1")
	}
	return q, nil
}
