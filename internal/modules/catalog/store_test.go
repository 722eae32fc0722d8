package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	products []Product
	err      error
	calls    int
}

func (f *stubFetcher) FetchProducts(ctx context.Context) ([]Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func product(id int, name, category string, stock int, price string) Product {
	return Product{ID: id, Name: name, Category: category, StockQty: stock,
		Price: decimal.RequireFromString(price)}
}

func testCatalog() []Product {
	return []Product{
		product(1, "Keyboard", "Electronics", 10, "89.99"),
		product(2, "Mug", "Home", 50, "9.99"),
		product(3, "Mouse", "Electronics", 30, "24.50"),
		product(4, "Notebook", "Stationery", 100, "4.25"),
	}
}

func TestLoadReplacesProductsWholesale(t *testing.T) {
	f := &stubFetcher{products: testCatalog()}
	s := NewStore(f)

	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Products(), 4)

	f.products = []Product{product(9, "Lamp", "Home", 5, "34.00")}
	require.NoError(t, s.Load(context.Background()))

	products := s.Products()
	require.Len(t, products, 1)
	assert.Equal(t, 9, products[0].ID)
}

func TestLoadFailureKeepsStaleProducts(t *testing.T) {
	f := &stubFetcher{products: testCatalog()}
	s := NewStore(f)
	require.NoError(t, s.Load(context.Background()))

	f.err = &FetchError{Reason: "products endpoint unreachable"}
	err := s.Load(context.Background())

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Len(t, s.Products(), 4, "stale catalog must be preserved")
}

func TestLoadKeepsSelectedCategory(t *testing.T) {
	f := &stubFetcher{products: testCatalog()}
	s := NewStore(f)
	require.NoError(t, s.Load(context.Background()))

	s.SetCategoryFilter("Stationery")
	f.products = []Product{product(1, "Keyboard", "Electronics", 10, "89.99")}
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, "Stationery", s.SelectedCategory())
	assert.Empty(t, s.FilteredProducts(), "vanished category filters to an empty view")
}

func TestFilteredProducts(t *testing.T) {
	f := &stubFetcher{products: testCatalog()}
	s := NewStore(f)
	require.NoError(t, s.Load(context.Background()))

	t.Run("All returns everything in fetch order", func(t *testing.T) {
		got := s.FilteredProducts()
		require.Len(t, got, 4)
		assert.Equal(t, []int{1, 2, 3, 4}, []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID})
	})

	t.Run("category subset preserves order", func(t *testing.T) {
		s.SetCategoryFilter("Electronics")
		got := s.FilteredProducts()
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		s.SetCategoryFilter("electronics")
		assert.Empty(t, s.FilteredProducts())
	})

	t.Run("unknown category yields empty view", func(t *testing.T) {
		s.SetCategoryFilter("Garden")
		assert.Empty(t, s.FilteredProducts())
	})
}

func TestAvailableCategories(t *testing.T) {
	f := &stubFetcher{products: []Product{
		product(1, "Mug", "Home", 1, "9.99"),
		product(2, "Pen", "Stationery", 1, "1.00"),
		product(3, "Lamp", "Home", 1, "34.00"),
		product(4, "Mouse", "Electronics", 1, "24.50"),
	}}
	s := NewStore(f)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, []string{"All", "Electronics", "Home", "Stationery"}, s.AvailableCategories())
}

func TestAvailableCategoriesEmptyCatalog(t *testing.T) {
	s := NewStore(&stubFetcher{})
	assert.Equal(t, []string{"All"}, s.AvailableCategories())
}

func TestFindProduct(t *testing.T) {
	f := &stubFetcher{products: testCatalog()}
	s := NewStore(f)
	require.NoError(t, s.Load(context.Background()))

	p, ok := s.FindProduct(3)
	require.True(t, ok)
	assert.Equal(t, "Mouse", p.Name)

	_, ok = s.FindProduct(99)
	assert.False(t, ok)
}

func TestDefaultFilterIsAll(t *testing.T) {
	s := NewStore(&stubFetcher{})
	assert.Equal(t, CategoryAll, s.SelectedCategory())
}
