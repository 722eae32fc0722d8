package order

import (
	"context"
	"sync"
	"time"
)

// StockStore is the slice of the catalog repository the in-memory order
// repository needs: guarded decrements plus compensation.
type StockStore interface {
	DecrementStock(ctx context.Context, productID, qty int) (bool, error)
	IncrementStock(ctx context.Context, productID, qty int) error
}

// MemoryRepository records orders in memory against a StockStore. It backs
// development mode and handler tests.
type MemoryRepository struct {
	stock StockStore

	mu     sync.Mutex
	nextID int64
	orders []*Order
}

// NewMemoryRepository creates a repository that adjusts stock through the
// given store. Order ids start at 1.
func NewMemoryRepository(stock StockStore) *MemoryRepository {
	return &MemoryRepository{stock: stock}
}

func (r *MemoryRepository) PlaceOrder(ctx context.Context, o *Order) error {
	// Take stock line by line; undo what was taken if a later line fails.
	var taken []Item
	for _, item := range o.Items {
		ok, err := r.stock.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err == nil && !ok {
			err = &InsufficientStockError{ProductID: item.ProductID}
		}
		if err != nil {
			for _, t := range taken {
				_ = r.stock.IncrementStock(ctx, t.ProductID, t.Quantity)
			}
			return err
		}
		taken = append(taken, item)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = time.Now()
	r.orders = append(r.orders, o)
	return nil
}

// Orders returns every recorded order, oldest first.
func (r *MemoryRepository) Orders() []*Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Order, len(r.orders))
	copy(out, r.orders)
	return out
}
