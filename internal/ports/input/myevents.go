package input

import (
	"context"

	"eventsphere/internal/domain/entities"
)

type MyEventsUseCase interface {
	Attending(ctx context.Context) ([]entities.AttendingEntry, error)
	Hosting(ctx context.Context) ([]entities.Event, error)
	Saved(ctx context.Context) ([]entities.SavedEntry, error)

	// DeleteEvent removes a hosted event and cascade-invalidates any local
	// attending/saved/reservation state that referenced it.
	DeleteEvent(ctx context.Context, id string) error
}
