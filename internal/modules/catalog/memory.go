package catalog

import (
	"context"
	"fmt"
	"sync"
)

// MemoryRepository is an in-memory Repository for development mode and
// tests. Unlike the client-side Store it is hit by concurrent HTTP
// handlers, so it locks.
type MemoryRepository struct {
	mu       sync.Mutex
	products []Product
}

// NewMemoryRepository creates a repository seeded with the given products.
func NewMemoryRepository(seed []Product) *MemoryRepository {
	products := make([]Product, len(seed))
	copy(products, seed)
	return &MemoryRepository{products: products}
}

func (r *MemoryRepository) ListAvailable(ctx context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Product
	for _, p := range r.products {
		if p.StockQty > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// DecrementStock atomically takes qty units of a product's stock. It
// returns false when the product is unknown or has insufficient stock,
// leaving the stock untouched.
func (r *MemoryRepository) DecrementStock(ctx context.Context, productID, qty int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == productID {
			if r.products[i].StockQty < qty {
				return false, nil
			}
			r.products[i].StockQty -= qty
			return true, nil
		}
	}
	return false, nil
}

// IncrementStock returns qty units to a product's stock. It compensates a
// partially applied order when a later line fails.
func (r *MemoryRepository) IncrementStock(ctx context.Context, productID, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == productID {
			r.products[i].StockQty += qty
			return nil
		}
	}
	return fmt.Errorf("unknown product %d", productID)
}
