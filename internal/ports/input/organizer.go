package input

import (
	"context"

	"eventsphere/internal/domain/entities"
)

type OrganizerUseCase interface {
	CreateEvent(ctx context.Context, draft *entities.EventDraft) (*entities.Event, error)
	UpdateEvent(ctx context.Context, id string, draft *entities.EventDraft) (*entities.Event, error)
	Participants(ctx context.Context, id string) ([]entities.Participant, error)
}
