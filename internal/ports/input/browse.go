package input

import (
	"context"

	"eventsphere/internal/domain/entities"
)

type BrowseUseCase interface {
	ListEvents(ctx context.Context, filter entities.ListFilter) (*entities.EventPage, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
}
