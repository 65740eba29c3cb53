package output

import (
	"context"

	"eventsphere/internal/domain/entities"
)

// EventRepository reads and mutates events on the remote API. List performs
// no client-side filtering or pagination; the returned total is the only
// basis for page-count math.
type EventRepository interface {
	List(ctx context.Context, filter entities.ListFilter) ([]entities.Event, int, error)
	Get(ctx context.Context, id string) (*entities.Event, error)
	Create(ctx context.Context, draft *entities.EventDraft) (*entities.Event, error)
	Update(ctx context.Context, id string, draft *entities.EventDraft) (*entities.Event, error)
	Delete(ctx context.Context, id string) error
	Participants(ctx context.Context, id string) ([]entities.Participant, error)
}
