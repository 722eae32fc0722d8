package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines the backend's order placement logic.
type Service interface {
	// Place totals the cart, records the order atomically, and returns it.
	Place(ctx context.Context, req Payload) (*Order, error)
}

type service struct{ repo Repository }

// NewService creates a new order service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Place(ctx context.Context, req Payload) (*Order, error) {
	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("customer_id must be a positive integer")
	}
	if len(req.Cart) == 0 {
		return nil, fmt.Errorf("cart must contain at least one item")
	}

	total := decimal.Zero
	items := make([]Item, 0, len(req.Cart))
	for _, line := range req.Cart {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %d", line.ProductID)
		}
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, Item{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	o := &Order{
		Number:      generateOrderNumber(),
		CustomerID:  req.CustomerID,
		TotalAmount: total.Round(2),
		Status:      StatusCompleted,
		Items:       items,
	}
	if err := s.repo.PlaceOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// generateOrderNumber creates a human-readable order number: ORD-YYYYMMDD-XXXX
func generateOrderNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("ORD-%s-%s", date, suffix)
}
