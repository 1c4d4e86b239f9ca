package users

import (
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/resource"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// Package users exposes the user endpoints. Create and the reads come from
// the shared resource handler; the two partial updates live in their own
// files:
// - update_role.go: Handler.UpdateRole
// - update_info.go: Handler.UpdateInfo

// Handler wires user endpoints to the users collection.
type Handler struct {
	*resource.Handler
}

// New returns a users handler. A user requires name and email on creation,
// and email is the unique key.
func New(s store.Store) *Handler {
	return &Handler{Handler: &resource.Handler{
		Name:      "User",
		IDKey:     "userId",
		Required:  []string{"name", "email"},
		UniqueKey: "email",
		Store:     s,
	}}
}
