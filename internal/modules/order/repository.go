package order

import "context"

// Repository persists order placements atomically: the order row, its
// items, the stock decrements, and the payment record land together or not
// at all. A placement that asks for more stock than is on hand fails with
// *InsufficientStockError and leaves nothing behind.
type Repository interface {
	PlaceOrder(ctx context.Context, o *Order) error
}
