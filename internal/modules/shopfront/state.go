// Package shopfront ties the catalog and cart stores together behind an
// explicit application state and a command dispatcher, so the storefront
// logic runs and tests without any rendering technology attached.
package shopfront

import (
	"github.com/aashutoshk/shopfront/internal/modules/cart"
	"github.com/aashutoshk/shopfront/internal/modules/catalog"
)

// State is the whole of the storefront's mutable UI state. It is owned by
// the Dispatcher and passed to the View for rendering; nothing here is a
// process-wide singleton.
type State struct {
	Catalog *catalog.Store
	Cart    *cart.Store

	// CustomerIDInput mirrors the checkout form field; cleared after a
	// successful order.
	CustomerIDInput string

	// Message is the last outcome to show the customer, with IsError
	// selecting the styling.
	Message string
	IsError bool
}

// NewState creates the application state around the given stores.
func NewState(catalogStore *catalog.Store, cartStore *cart.Store) *State {
	return &State{Catalog: catalogStore, Cart: cartStore}
}

// View renders a state snapshot to some display surface. Rendering is a
// pure collaborator: it never mutates State.
type View interface {
	Render(st *State)
}

// ViewFunc adapts a function to the View interface.
type ViewFunc func(st *State)

// Render calls f.
func (f ViewFunc) Render(st *State) { f(st) }
