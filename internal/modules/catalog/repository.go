package catalog

import "context"

// Repository defines the interface for product data storage.
type Repository interface {
	// ListAvailable returns every product with stock on hand, in catalog order.
	ListAvailable(ctx context.Context) ([]Product, error)
}
