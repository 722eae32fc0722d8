package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

// Placer submits an order payload to the backend. Implementations are
// adapters over a concrete transport.
type Placer interface {
	PlaceOrder(ctx context.Context, p Payload) (PlacementResult, error)
}

// HTTPPlacer submits orders to the storefront API over HTTP.
type HTTPPlacer struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPPlacer creates a placer for the API at baseURL. Transport policy
// lives in the supplied http.Client.
func NewHTTPPlacer(baseURL string, client *http.Client, logger *zap.Logger) *HTTPPlacer {
	return &HTTPPlacer{baseURL: baseURL, client: client, logger: logger}
}

// PlaceOrder issues POST /api/place_order once, with no retry. A response
// whose body decodes as a PlacementResult is returned regardless of HTTP
// status: the backend reports rejections as success=false with status 500,
// and that is the server's verdict, not a transport failure.
func (p *HTTPPlacer) PlaceOrder(ctx context.Context, payload Payload) (PlacementResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return PlacementResult{}, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/api/place_order", bytes.NewReader(body))
	if err != nil {
		return PlacementResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn("order placement failed", zap.Error(err))
		return PlacementResult{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return PlacementResult{}, fmt.Errorf("read response: %w", err)
	}

	var result PlacementResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return PlacementResult{}, fmt.Errorf("malformed placement response (status %d): %w", resp.StatusCode, err)
	}

	p.logger.Debug("order placement responded",
		zap.Bool("success", result.Success), zap.Int64("order_id", result.OrderID))
	return result, nil
}
