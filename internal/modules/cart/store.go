// Package cart holds the in-memory shopping cart for a storefront session.
// The cart lives only for the session and is never persisted.
package cart

import "github.com/shopspring/decimal"

// Line is one entry in the cart: at most one Line exists per product.
// Name and UnitPrice are copied from the catalog at add time so the line
// survives a catalog refresh that reprices or removes the product.
type Line struct {
	ProductID int
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Store owns the cart lines. All mutation happens on the storefront's single
// logical thread, so the store carries no lock.
type Store struct {
	lines []Line
}

// NewStore creates an empty cart.
func NewStore() *Store { return &Store{} }

// AddItem adds one unit of the given product. A repeat add increments the
// existing line's quantity instead of appending a second line. Quantity is
// not capped against catalog stock: the backend rejects over-orders at
// placement time, which is the only place stock is authoritative.
func (s *Store) AddItem(productID int, name string, unitPrice decimal.Decimal) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// RemoveItem deletes the line for the given product. Removing an absent
// product is a no-op.
func (s *Store) RemoveItem(productID int) {
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() { s.lines = nil }

// IsEmpty reports whether the cart has no lines.
func (s *Store) IsEmpty() bool { return len(s.lines) == 0 }

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total returns the cart total rounded to 2 decimal places for display.
// Lines are summed exactly first and rounded once, so no rounding error
// accumulates across lines.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total.Round(2)
}
