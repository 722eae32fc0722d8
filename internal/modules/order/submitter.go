package order

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aashutoshk/shopfront/internal/modules/cart"
	"github.com/aashutoshk/shopfront/internal/modules/catalog"
)

// Submitter turns cart state into an order placement and reconciles the
// outcome back into the stores. A checkout attempt runs to one of four
// terminal outcomes: rejected locally (*ValidationError, no network call),
// network-failed (*NetworkError), rejected by the server (*OrderRejected),
// or succeeded. Nothing guards against a second Checkout being started while
// one is in flight: the storefront runs on one logical thread, and if a
// caller races anyway the backend's stock guard arbitrates.
type Submitter struct {
	placer  Placer
	catalog *catalog.Store
	logger  *zap.Logger
}

// NewSubmitter creates a submitter that places orders through placer and
// refreshes catalogStore after a successful placement.
func NewSubmitter(placer Placer, catalogStore *catalog.Store, logger *zap.Logger) *Submitter {
	return &Submitter{placer: placer, catalog: catalogStore, logger: logger}
}

// Checkout validates the customer id and cart, submits the order, and on
// success clears the cart and reloads the catalog to pick up stock changes.
// On any failure the cart and catalog are left exactly as they were. The
// catalog refresh after success is strictly sequential with the cart clear,
// and its own failure is reported on the Confirmation without demoting the
// checkout's success.
func (s *Submitter) Checkout(ctx context.Context, customerIDRaw string, c *cart.Store) (*Confirmation, error) {
	customerID, err := strconv.Atoi(strings.TrimSpace(customerIDRaw))
	if err != nil || customerID <= 0 {
		return nil, &ValidationError{Reason: "invalid customer id"}
	}
	if c.IsEmpty() {
		return nil, &ValidationError{Reason: "empty cart"}
	}

	lines := c.Lines()
	payload := Payload{CustomerID: customerID, Cart: make([]PayloadLine, 0, len(lines))}
	for _, l := range lines {
		payload.Cart = append(payload.Cart, PayloadLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		})
	}

	result, err := s.placer.PlaceOrder(ctx, payload)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if !result.Success {
		s.logger.Info("order rejected", zap.String("reason", result.Message))
		return nil, &OrderRejected{Message: result.Message}
	}

	c.Clear()
	s.logger.Info("order placed",
		zap.Int64("order_id", result.OrderID), zap.Int("customer_id", customerID))

	conf := &Confirmation{Message: result.Message}
	if err := s.catalog.Load(ctx); err != nil {
		s.logger.Warn("post-checkout catalog refresh failed", zap.Error(err))
		conf.RefreshErr = err
	}
	return conf, nil
}
