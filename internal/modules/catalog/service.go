package catalog

import "context"

// Service defines catalog business logic for the storefront API.
type Service interface {
	// ListAvailable returns the sellable catalog: products with stock > 0.
	ListAvailable(ctx context.Context) ([]Product, error)
}

type service struct{ repo Repository }

// NewService creates a new catalog service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListAvailable(ctx context.Context) ([]Product, error) {
	return s.repo.ListAvailable(ctx)
}
