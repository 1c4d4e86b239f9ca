package resource

import "github.com/mehedishopnil/rci-maria-server/internal/store"

// Package resource implements the request pattern every collection exposed by
// the gateway shares: bind, validate, issue exactly one store operation, map
// the outcome to a response. The users, resorts and bookings packages
// parameterize this handler instead of repeating it per resource.
//
// The HTTP methods are split into dedicated, focused files:
// - create.go: Handler.Create
// - get.go:    Handler.GetByField, Handler.ListByField
// - list.go:   Handler.ListAll, Handler.ListCapped

// Handler wires one document collection to the shared endpoint pattern.
type Handler struct {
	// Name is the singular resource name used in response messages
	// ("User", "Resort", "Booking").
	Name string
	// IDKey is the response key carrying a created document's id
	// ("userId", "resortId", "bookingId").
	IDKey string
	// Required lists body fields that must be present and non-blank on
	// create. Empty means any document shape is accepted.
	Required []string
	// UniqueKey, when set, names the field whose value must not already
	// exist in the collection; create answers 409 on a duplicate.
	UniqueKey string

	Store store.Store
}

// New returns a handler for one resource collection.
func New(name, idKey string, s store.Store) *Handler {
	return &Handler{Name: name, IDKey: idKey, Store: s}
}
