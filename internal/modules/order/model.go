package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayloadLine is one cart line on the wire.
type PayloadLine struct {
	ProductID int             `json:"id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Payload is the order-placement request body. It is derived from the cart
// at checkout time and never stored.
type Payload struct {
	CustomerID int           `json:"customer_id"`
	Cart       []PayloadLine `json:"cart"`
}

// PlacementResult is the order-placement response body.
type PlacementResult struct {
	Success bool   `json:"success"`
	OrderID int64  `json:"order_id,omitempty"`
	Message string `json:"message"`
}

// Confirmation is returned to the caller after a successful checkout.
// RefreshErr carries a catalog-refresh failure that followed the placement;
// it is informational and never turns the checkout into a failure.
type Confirmation struct {
	Message    string
	RefreshErr error
}

// Order is a placed order as recorded by the backend.
type Order struct {
	ID          int64           `json:"order_id"`
	Number      string          `json:"order_number"`
	CustomerID  int             `json:"customer_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
	Items       []Item          `json:"items,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Item is a single line item within a recorded order.
type Item struct {
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// StatusCompleted is the only status the storefront backend records:
// placement is synchronous and all-or-nothing.
const StatusCompleted = "Completed"
