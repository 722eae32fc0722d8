package order

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aashutoshk/shopfront/internal/modules/catalog"
)

func newTestBackend(products []catalog.Product) (*chi.Mux, *catalog.MemoryRepository, *MemoryRepository) {
	stock := catalog.NewMemoryRepository(products)
	repo := NewMemoryRepository(stock)
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)
	return r, stock, repo
}

func catalogProduct(id int, stock int, priceStr string) catalog.Product {
	return catalog.Product{ID: id, Name: "P", Category: "C", StockQty: stock,
		Price: price(priceStr)}
}

func postOrder(t *testing.T, router *chi.Mux, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/place_order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestPlaceOrderHappyPath(t *testing.T) {
	router, stock, repo := newTestBackend([]catalog.Product{catalogProduct(1, 10, "9.99")})

	rec := postOrder(t, router, `{"customer_id":7,"cart":[{"id":1,"quantity":2,"price":9.99}]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result PlacementResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, int64(1), result.OrderID)
	assert.Equal(t, "Order 1 placed successfully! Total: $19.98", result.Message)

	// stock decremented
	left, err := stock.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, 8, left[0].StockQty)

	// order recorded
	orders := repo.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, 7, orders[0].CustomerID)
	assert.Equal(t, StatusCompleted, orders[0].Status)
	assert.True(t, orders[0].TotalAmount.Equal(price("19.98")))
	assert.True(t, strings.HasPrefix(orders[0].Number, "ORD-"))
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	router, stock, repo := newTestBackend([]catalog.Product{
		catalogProduct(1, 5, "2.00"),
		catalogProduct(2, 1, "3.00"),
	})

	rec := postOrder(t, router,
		`{"customer_id":7,"cart":[{"id":1,"quantity":2,"price":2.00},{"id":2,"quantity":4,"price":3.00}]}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var result PlacementResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Order failed: Insufficient stock for Product ID 2. Transaction aborted.", result.Message)

	// first line's decrement must have been rolled back
	left, err := stock.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, left, 2)
	assert.Equal(t, 5, left[0].StockQty)
	assert.Empty(t, repo.Orders())
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	router, _, _ := newTestBackend([]catalog.Product{catalogProduct(1, 5, "2.00")})

	rec := postOrder(t, router, `{"customer_id":7,"cart":[{"id":99,"quantity":1,"price":2.00}]}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var result PlacementResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.Message, "Insufficient stock for Product ID 99")
}

func TestPlaceOrderRejectsMissingFields(t *testing.T) {
	router, _, _ := newTestBackend([]catalog.Product{catalogProduct(1, 5, "2.00")})

	for name, body := range map[string]string{
		"no customer id": `{"cart":[{"id":1,"quantity":1,"price":2.00}]}`,
		"empty cart":     `{"customer_id":7,"cart":[]}`,
		"not json":       `{{{`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := postOrder(t, router, body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			var result PlacementResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.False(t, result.Success)
			assert.Equal(t, "Missing customer ID or cart items.", result.Message)
		})
	}
}
