package input

import (
	"context"

	"eventsphere/internal/domain/entities"
)

type ReservationUseCase interface {
	// Load refreshes the view from its three independent probes (event
	// detail, RSVP status, saved membership) and blocks until all have
	// resolved or failed. Probe failures land on the view, not in an error.
	Load(ctx context.Context, eventID string) *entities.ReservationView

	// View returns the current snapshot without touching the network.
	View(eventID string) *entities.ReservationView

	ToggleRSVP(ctx context.Context, eventID string) (*entities.ReservationView, error)
	ToggleSave(ctx context.Context, eventID string) (*entities.ReservationView, error)

	// Leave marks the view inactive so late probe results are discarded.
	Leave(eventID string)
}
