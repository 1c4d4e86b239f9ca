package resorts

import (
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/resource"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// Package resorts exposes the resort endpoints. Resorts are free-form
// documents: no required fields, no unique key. Create and the plain
// listings come from the shared resource handler; the paginated listing
// lives in list_paged.go.

// Handler wires resort endpoints to the resorts collection.
type Handler struct {
	*resource.Handler
}

// New returns a resorts handler.
func New(s store.Store) *Handler {
	return &Handler{Handler: resource.New("Resort", "resortId", s)}
}
