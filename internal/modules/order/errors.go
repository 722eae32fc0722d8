package order

import "fmt"

// ValidationError reports a checkout precondition failure caught before any
// network call is made.
type ValidationError struct{ Reason string }

func (e *ValidationError) Error() string { return e.Reason }

// NetworkError reports a transport-level placement failure: the endpoint was
// unreachable or its response did not parse. The cart is left untouched.
type NetworkError struct{ Err error }

func (e *NetworkError) Error() string { return fmt.Sprintf("order placement: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// OrderRejected reports that the backend declined the order, carrying the
// server-supplied reason verbatim.
type OrderRejected struct{ Message string }

func (e *OrderRejected) Error() string { return e.Message }

// InsufficientStockError is returned by the backend repositories when a
// cart line asks for more units than are on hand. Its message is what the
// customer sees, so it keeps the storefront's wording.
type InsufficientStockError struct{ ProductID int }

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for Product ID %d. Transaction aborted.", e.ProductID)
}
