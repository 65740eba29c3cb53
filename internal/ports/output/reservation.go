package output

import (
	"context"

	"eventsphere/internal/domain/entities"
)

// ReservationClient issues RSVP and saved-set mutations against the API.
//
// ToggleRSVP serves both reserve and cancel: the server infers the direction
// from its stored state, so callers must re-derive their reserved flag from
// the response, never from the direction they assumed.
//
// Saved membership has explicit add/remove calls; the caller picks the
// direction from its local view, best-effort. Removing a non-member is a
// success, not an error.
type ReservationClient interface {
	ToggleRSVP(ctx context.Context, eventID string) (entities.RsvpResult, error)
	RSVPStatus(ctx context.Context, eventID string) (entities.ReservationStatus, error)
	SaveEvent(ctx context.Context, eventID string) error
	UnsaveEvent(ctx context.Context, eventID string) error
	ListSaved(ctx context.Context) ([]entities.SavedEntry, error)
	Attending(ctx context.Context) ([]entities.AttendingEntry, error)
	Hosting(ctx context.Context) ([]entities.Event, error)
}
