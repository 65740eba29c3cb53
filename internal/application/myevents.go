package application

import (
	"context"
	"fmt"
	"sync"

	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/input"
	"eventsphere/internal/ports/output"
)

var _ input.MyEventsUseCase = (*MyEventsService)(nil)

// MyEventsService serves the attending/hosting/saved lists and owns the
// delete cascade: a deleted hosted event must disappear from every local
// list and view that referenced it, not only from the hosting tab.
//
// The caches are only ever mutated by the calling surface in response to a
// resolved request; there are no concurrent writers beyond that, but the
// mutex keeps the cascade atomic with respect to reads.
type MyEventsService struct {
	events       output.EventRepository
	client       output.ReservationClient
	reservations *ReservationService

	mu        sync.Mutex
	attending []entities.AttendingEntry
	hosting   []entities.Event
	saved     []entities.SavedEntry
}

func NewMyEventsService(events output.EventRepository, client output.ReservationClient, reservations *ReservationService) *MyEventsService {
	return &MyEventsService{
		events:       events,
		client:       client,
		reservations: reservations,
	}
}

func (s *MyEventsService) Attending(ctx context.Context) ([]entities.AttendingEntry, error) {
	entries, err := s.client.Attending(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.attending = entries
	s.mu.Unlock()
	return entries, nil
}

func (s *MyEventsService) Hosting(ctx context.Context) ([]entities.Event, error) {
	events, err := s.client.Hosting(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.hosting = events
	s.mu.Unlock()
	return events, nil
}

func (s *MyEventsService) Saved(ctx context.Context) ([]entities.SavedEntry, error) {
	entries, err := s.client.ListSaved(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.saved = entries
	s.mu.Unlock()
	return entries, nil
}

// DeleteEvent deletes a hosted event on the server, then cascade-invalidates
// every local reference: hosting, attending and saved caches plus the
// reservation view.
func (s *MyEventsService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.mu.Lock()
	s.hosting = removeEvent(s.hosting, id)
	s.attending = removeAttending(s.attending, id)
	s.saved = removeSaved(s.saved, id)
	s.mu.Unlock()

	if s.reservations != nil {
		s.reservations.Invalidate(id)
	}
	return nil
}

// CachedAttending returns the last fetched attending list without a network
// call. Used by surfaces that only need to re-render after a cascade.
func (s *MyEventsService) CachedAttending() []entities.AttendingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.AttendingEntry, len(s.attending))
	copy(out, s.attending)
	return out
}

// CachedSaved returns the last fetched saved list without a network call.
func (s *MyEventsService) CachedSaved() []entities.SavedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.SavedEntry, len(s.saved))
	copy(out, s.saved)
	return out
}

func removeEvent(events []entities.Event, id string) []entities.Event {
	out := events[:0]
	for _, e := range events {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func removeAttending(entries []entities.AttendingEntry, id string) []entities.AttendingEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.Event.ID != id {
			out = append(out, e)
		}
	}
	return out
}

func removeSaved(entries []entities.SavedEntry, id string) []entities.SavedEntry {
	out := entries[:0]
	for _, e := range entries {
		if e.Event.ID != id {
			out = append(out, e)
		}
	}
	return out
}
