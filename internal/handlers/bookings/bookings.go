package bookings

import (
	"github.com/mehedishopnil/rci-maria-server/internal/handlers/resource"
	"github.com/mehedishopnil/rci-maria-server/internal/store"
)

// Package bookings exposes the booking endpoints. A booking is a free-form
// document expected to carry the owner's email; lookup by email is
// multi-match since one guest can hold several reservations.

// Handler wires booking endpoints to the bookings collection.
type Handler struct {
	*resource.Handler
}

// New returns a bookings handler.
func New(s store.Store) *Handler {
	return &Handler{Handler: resource.New("Booking", "bookingId", s)}
}
