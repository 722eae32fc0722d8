package order

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the order placement HTTP endpoint.
type Handler struct{ service Service }

// NewHandler creates an order handler.
func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts the order routes on the router.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Post("/api/place_order", h.placeOrder)
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req Payload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, PlacementResult{
			Success: false,
			Message: "Missing customer ID or cart items.",
		})
		return
	}
	if req.CustomerID <= 0 || len(req.Cart) == 0 {
		respond(w, http.StatusBadRequest, PlacementResult{
			Success: false,
			Message: "Missing customer ID or cart items.",
		})
		return
	}

	o, err := h.service.Place(r.Context(), req)
	if err != nil {
		respond(w, http.StatusInternalServerError, PlacementResult{
			Success: false,
			Message: fmt.Sprintf("Order failed: %v", err),
		})
		return
	}

	respond(w, http.StatusOK, PlacementResult{
		Success: true,
		OrderID: o.ID,
		Message: fmt.Sprintf("Order %d placed successfully! Total: $%s", o.ID, o.TotalAmount.StringFixed(2)),
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
