package catalog

import (
	"context"
	"sort"
)

// Fetcher retrieves the full product list from the remote catalog.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// Store holds the last successfully fetched catalog and the active category
// filter. Like the cart, it is confined to the storefront's single logical
// thread and carries no lock.
type Store struct {
	fetcher          Fetcher
	products         []Product
	selectedCategory string
}

// NewStore creates an empty catalog store with the "All" filter active.
func NewStore(fetcher Fetcher) *Store {
	return &Store{fetcher: fetcher, selectedCategory: CategoryAll}
}

// Load fetches the product list and replaces the held catalog wholesale.
// On failure the previous products are kept (stale but valid) and the
// fetch error is returned. The category filter is never reset by a load,
// even when its category no longer matches any product: the filtered view
// simply goes empty.
func (s *Store) Load(ctx context.Context) error {
	products, err := s.fetcher.FetchProducts(ctx)
	if err != nil {
		return err
	}
	s.products = products
	return nil
}

// Products returns the full catalog in fetch order.
func (s *Store) Products() []Product { return s.products }

// SetCategoryFilter activates the given category. The value is not checked
// against known categories; filtering on an unknown one yields an empty view.
func (s *Store) SetCategoryFilter(category string) { s.selectedCategory = category }

// SelectedCategory returns the active filter value.
func (s *Store) SelectedCategory() string { return s.selectedCategory }

// FilteredProducts returns the catalog subset matching the active filter:
// everything under "All", otherwise products whose category is an exact
// case-sensitive match. Fetch order is preserved.
func (s *Store) FilteredProducts() []Product {
	if s.selectedCategory == CategoryAll {
		return s.products
	}
	var out []Product
	for _, p := range s.products {
		if p.Category == s.selectedCategory {
			out = append(out, p)
		}
	}
	return out
}

// AvailableCategories returns "All" followed by the distinct product
// categories in ascending order.
func (s *Store) AvailableCategories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return append([]string{CategoryAll}, cats...)
}

// FindProduct looks up a product by id in the current catalog.
func (s *Store) FindProduct(id int) (Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
