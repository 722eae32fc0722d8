package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// HTTPFetcher fetches the product list over HTTP from the storefront API.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPFetcher creates a fetcher for the API at baseURL. The supplied
// http.Client owns all transport policy (timeouts included); pass
// http.DefaultClient to keep transport defaults.
func NewHTTPFetcher(baseURL string, client *http.Client, logger *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{baseURL: baseURL, client: client, logger: logger}
}

// FetchProducts issues GET /api/products and decodes the product array.
// Any failure is reported as a *FetchError.
func (f *HTTPFetcher) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/api/products", nil)
	if err != nil {
		return nil, &FetchError{Reason: "build request", Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("catalog fetch failed", zap.Error(err))
		return nil, &FetchError{Reason: "products endpoint unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Warn("catalog fetch rejected", zap.Int("status", resp.StatusCode))
		return nil, &FetchError{Reason: fmt.Sprintf("products endpoint returned status %d", resp.StatusCode)}
	}

	var products []Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, &FetchError{Reason: "malformed product list", Err: err}
	}

	f.logger.Debug("catalog fetched", zap.Int("products", len(products)))
	return products, nil
}
