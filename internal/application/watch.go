package application

import (
	"context"
	"log"
	"sync"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/input"
	"eventsphere/internal/ports/output"
)

var _ input.WatchUseCase = (*WatchService)(nil)

// WatchService polls watched events and raises a notification when a full
// event regains seats, the moment a spot frees up. Deleted events are
// reported once and then dropped from the watch set.
type WatchService struct {
	events     output.EventRepository
	notifier   output.Notifier
	translator output.T
	locale     string

	mu      sync.Mutex
	watched map[string]watchState
}

type watchState struct {
	title     string
	lastSeats int
	seen      bool
}

func NewWatchService(events output.EventRepository, notifier output.Notifier, translator output.T, locale string) *WatchService {
	return &WatchService{
		events:     events,
		notifier:   notifier,
		translator: translator,
		locale:     locale,
		watched:    make(map[string]watchState),
	}
}

// Watch adds eventID to the watch set.
func (s *WatchService) Watch(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.watched[eventID]; !ok {
		s.watched[eventID] = watchState{}
	}
}

// Poll fetches every watched event once and notifies on seat transitions.
// Individual fetch failures are logged and retried on the next tick.
func (s *WatchService) Poll(ctx context.Context) {
	s.mu.Lock()
	ids := make([]string, 0, len(s.watched))
	for id := range s.watched {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		event, err := s.events.Get(ctx, id)
		if err != nil {
			if domain.Code(err) == "event_not_found" {
				s.notifyGone(ctx, id)
				continue
			}
			log.Printf("watch: fetch %s failed: %v", id, err)
			continue
		}
		s.inspect(ctx, event)
	}
}

func (s *WatchService) inspect(ctx context.Context, event *entities.Event) {
	s.mu.Lock()
	state, ok := s.watched[event.ID]
	if !ok {
		s.mu.Unlock()
		return
	}
	freedUp := state.seen && state.lastSeats <= 0 && event.Capacity.SeatsRemaining > 0
	s.watched[event.ID] = watchState{
		title:     event.Title,
		lastSeats: event.Capacity.SeatsRemaining,
		seen:      true,
	}
	s.mu.Unlock()

	if !freedUp {
		return
	}
	text := s.translator.T(s.locale, "watch.seats_freed", map[string]any{
		"Title": event.Title,
		"Seats": event.Capacity.SeatsRemaining,
	})
	if err := s.notifier.Notify(ctx, text); err != nil {
		log.Printf("watch: notify failed for %s: %v", event.ID, err)
	}
}

func (s *WatchService) notifyGone(ctx context.Context, eventID string) {
	s.mu.Lock()
	state, ok := s.watched[eventID]
	delete(s.watched, eventID)
	s.mu.Unlock()
	if !ok {
		return
	}
	title := state.title
	if title == "" {
		title = eventID
	}
	text := s.translator.T(s.locale, "watch.event_gone", map[string]any{"Title": title})
	if err := s.notifier.Notify(ctx, text); err != nil {
		log.Printf("watch: notify failed for %s: %v", eventID, err)
	}
}

// Watched reports the current watch set size, for status output.
func (s *WatchService) Watched() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watched)
}
