package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as bare JSON numbers, matching the products endpoint.
	decimal.MarshalJSONWithoutQuotes = true
}

// CategoryAll is the filter value that selects every product.
const CategoryAll = "All"

// Product is one purchasable item as served by the catalog endpoint.
// Products are immutable once fetched and replaced wholesale on each load.
type Product struct {
	ID       int             `json:"ProductID"`
	Name     string          `json:"Name"`
	Category string          `json:"Category"`
	StockQty int             `json:"StockQty"`
	Price    decimal.Decimal `json:"Price"`
}

// FetchError reports a failed catalog load: a transport failure, a non-2xx
// status, or a response body that does not parse as a product list.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog fetch: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("catalog fetch: %s", e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }
