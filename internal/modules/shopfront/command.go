package shopfront

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aashutoshk/shopfront/internal/modules/order"
)

// Command is a discrete user intent forwarded by the View.
type Command interface{ isCommand() }

// Refresh reloads the catalog from the backend.
type Refresh struct{}

// AddToCart puts one unit of a product in the cart.
type AddToCart struct{ ProductID int }

// RemoveFromCart deletes a product's cart line.
type RemoveFromCart struct{ ProductID int }

// SelectCategory activates a category filter.
type SelectCategory struct{ Category string }

// Checkout submits the cart as an order for the given customer.
type Checkout struct{ CustomerIDText string }

func (Refresh) isCommand()        {}
func (AddToCart) isCommand()      {}
func (RemoveFromCart) isCommand() {}
func (SelectCategory) isCommand() {}
func (Checkout) isCommand()       {}

// Dispatcher applies commands to the application state and asks the View to
// re-render after each one. It is the single place UI events meet store
// mutations.
type Dispatcher struct {
	state     *State
	submitter *order.Submitter
	view      View
	logger    *zap.Logger
}

// NewDispatcher wires the state, submitter and view together.
func NewDispatcher(state *State, submitter *order.Submitter, view View, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{state: state, submitter: submitter, view: view, logger: logger}
}

// State returns the dispatcher's application state.
func (d *Dispatcher) State() *State { return d.state }

// Dispatch applies one command and re-renders. Failures surface as a
// message on the state, never as a panic or process exit: the storefront
// stays interactive after any error.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) {
	switch c := cmd.(type) {
	case Refresh:
		if err := d.state.Catalog.Load(ctx); err != nil {
			d.logger.Warn("catalog load failed", zap.Error(err))
			d.setMessage("Connection Error: could not load products.", true)
		}

	case AddToCart:
		// Unknown ids (a stale button after a refresh) are ignored.
		if p, ok := d.state.Catalog.FindProduct(c.ProductID); ok {
			d.state.Cart.AddItem(p.ID, p.Name, p.Price)
		}

	case RemoveFromCart:
		d.state.Cart.RemoveItem(c.ProductID)

	case SelectCategory:
		d.state.Catalog.SetCategoryFilter(c.Category)

	case Checkout:
		d.state.CustomerIDInput = c.CustomerIDText
		d.checkout(ctx)
	}

	d.view.Render(d.state)
}

func (d *Dispatcher) checkout(ctx context.Context) {
	conf, err := d.submitter.Checkout(ctx, d.state.CustomerIDInput, d.state.Cart)
	if err != nil {
		d.setMessage(checkoutFailureMessage(err), true)
		return
	}
	d.state.CustomerIDInput = ""
	d.setMessage(conf.Message, false)
	if conf.RefreshErr != nil {
		d.logger.Warn("catalog refresh after checkout failed", zap.Error(conf.RefreshErr))
	}
}

func (d *Dispatcher) setMessage(msg string, isError bool) {
	d.state.Message = msg
	d.state.IsError = isError
}

// checkoutFailureMessage maps the checkout error taxonomy to what the
// customer reads.
func checkoutFailureMessage(err error) string {
	var vErr *order.ValidationError
	var rejected *order.OrderRejected
	var netErr *order.NetworkError
	switch {
	case errors.As(err, &vErr):
		if vErr.Reason == "empty cart" {
			return "Your cart is empty."
		}
		return "Please enter a valid Customer ID."
	case errors.As(err, &rejected):
		return rejected.Message
	case errors.As(err, &netErr):
		return "A network error occurred. Please try again."
	default:
		return err.Error()
	}
}
