package application

import (
	"context"
	"fmt"

	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/input"
	"eventsphere/internal/ports/output"
)

var _ input.OrganizerUseCase = (*OrganizerService)(nil)

// OrganizerService covers the hosting side: create and edit events,
// inspect attendees. All drafts pass the client-side form checks before any
// network call is made.
type OrganizerService struct {
	events output.EventRepository
}

func NewOrganizerService(events output.EventRepository) *OrganizerService {
	return &OrganizerService{events: events}
}

func (s *OrganizerService) CreateEvent(ctx context.Context, draft *entities.EventDraft) (*entities.Event, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.Mode != entities.ModeInPerson {
		// Location is an in-person concern only; never send one for online events.
		draft.Location = nil
	}
	event, err := s.events.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *OrganizerService) UpdateEvent(ctx context.Context, id string, draft *entities.EventDraft) (*entities.Event, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	if draft.Mode != entities.ModeInPerson {
		draft.Location = nil
	}
	event, err := s.events.Update(ctx, id, draft)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *OrganizerService) Participants(ctx context.Context, id string) ([]entities.Participant, error) {
	return s.events.Participants(ctx, id)
}
