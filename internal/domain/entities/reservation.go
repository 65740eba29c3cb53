package entities

// ReservationStatus is the server-stored RSVP state for a (user, event) pair.
// Only StatusReserved consumes a seat.
type ReservationStatus string

const (
	StatusNotReserved ReservationStatus = "none"
	StatusReserved    ReservationStatus = "reserved"
	StatusCancelled   ReservationStatus = "cancelled"
)

// RsvpResult is the authoritative post-toggle state returned by the server.
// Both fields come from the same response and must be applied together.
type RsvpResult struct {
	Reserved       bool
	SeatsRemaining int
}

// AttendingEntry wraps an event with the caller's RSVP status, as returned
// by the attending list endpoint.
type AttendingEntry struct {
	ID     string
	Status ReservationStatus
	Event  Event
}

// SavedEntry is one element of the caller's saved-events set.
type SavedEntry struct {
	ID    string
	Event Event
}
