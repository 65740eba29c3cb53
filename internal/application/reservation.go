package application

import (
	"context"
	"sync"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
	"eventsphere/internal/ports/input"
	"eventsphere/internal/ports/output"
)

var _ input.ReservationUseCase = (*ReservationService)(nil)

// ReservationService reconciles the per-event RSVP/saved view from three
// independent sources: the event fetch, the RSVP-status probe and the
// saved-membership probe, plus the authoritative response of every toggle.
//
// Each view carries a load generation. Probe and toggle results are applied
// only while their generation is still current, so results resolving after
// the user left the view (or after a newer load started) are discarded.
type ReservationService struct {
	events output.EventRepository
	client output.ReservationClient

	mu    sync.Mutex
	views map[string]*viewRecord
}

type viewRecord struct {
	gen  uint64
	view entities.ReservationView

	// seatsFromToggle marks that the displayed seat count came from a toggle
	// response, which supersedes the initial fetch value for the rest of the
	// view's lifetime.
	seatsFromToggle bool
}

func NewReservationService(events output.EventRepository, client output.ReservationClient) *ReservationService {
	return &ReservationService{
		events: events,
		client: client,
		views:  make(map[string]*viewRecord),
	}
}

// Load refreshes the view for eventID by issuing the three probes
// concurrently. It blocks until every probe has either applied or failed;
// a failure in one probe never blocks the others. The returned snapshot is
// a copy and safe to render without further locking.
func (s *ReservationService) Load(ctx context.Context, eventID string) *entities.ReservationView {
	s.mu.Lock()
	rec := s.ensure(eventID)
	rec.gen++
	gen := rec.gen
	rec.seatsFromToggle = false
	rec.view.EventErr = nil
	rec.view.StatusErr = nil
	rec.view.SavedErr = nil
	rec.view.RsvpErr = nil
	rec.view.SaveErr = nil
	s.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		event, err := s.events.Get(ctx, eventID)
		s.applyEvent(eventID, gen, event, err)
	}()
	go func() {
		defer wg.Done()
		status, err := s.client.RSVPStatus(ctx, eventID)
		s.applyStatus(eventID, gen, status, err)
	}()
	go func() {
		defer wg.Done()
		entries, err := s.client.ListSaved(ctx)
		s.applySaved(eventID, gen, entries, err)
	}()

	wg.Wait()
	return s.View(eventID)
}

// View returns the current snapshot without touching the network.
func (s *ReservationService) View(eventID string) *entities.ReservationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensure(eventID)
	snapshot := rec.view
	return &snapshot
}

// ToggleRSVP submits a reserve-or-cancel toggle. The view enters the
// Pending state for the duration of the call; on success both the reserved
// flag and the seat count are replaced atomically from the single server
// response, on failure the prior state is restored and the error is kept
// inline on the view.
func (s *ReservationService) ToggleRSVP(ctx context.Context, eventID string) (*entities.ReservationView, error) {
	s.mu.Lock()
	rec := s.ensure(eventID)
	if rec.view.State == entities.RsvpPending {
		snapshot := rec.view
		s.mu.Unlock()
		return &snapshot, domain.ErrTogglePending
	}
	prior := rec.view.State
	rec.view.State = entities.RsvpPending
	rec.view.RsvpErr = nil
	gen := rec.gen
	s.mu.Unlock()

	result, err := s.client.ToggleRSVP(ctx, eventID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.gen != gen {
		// View was left or reloaded mid-flight; discard the result. The
		// pending marker still has to clear or the control stays disabled.
		if rec.view.State == entities.RsvpPending {
			rec.view.State = prior
		}
		snapshot := rec.view
		return &snapshot, err
	}
	if err != nil {
		rec.view.State = prior
		rec.view.RsvpErr = err
		snapshot := rec.view
		return &snapshot, err
	}
	if result.Reserved {
		rec.view.State = entities.RsvpReserved
	} else {
		rec.view.State = entities.RsvpNotReserved
	}
	rec.view.SeatsRemaining = result.SeatsRemaining
	rec.view.SeatsKnown = true
	rec.seatsFromToggle = true
	if rec.view.Event != nil {
		rec.view.Event.Capacity.SeatsRemaining = result.SeatsRemaining
	}
	snapshot := rec.view
	return &snapshot, nil
}

// ToggleSave adds or removes the event from the saved set, choosing the
// direction from the local membership view. Best-effort: there is no
// atomicity between that decision and the call itself.
func (s *ReservationService) ToggleSave(ctx context.Context, eventID string) (*entities.ReservationView, error) {
	s.mu.Lock()
	rec := s.ensure(eventID)
	if rec.view.SavePending {
		snapshot := rec.view
		s.mu.Unlock()
		return &snapshot, domain.ErrTogglePending
	}
	rec.view.SavePending = true
	rec.view.SaveErr = nil
	saved := rec.view.Saved
	gen := rec.gen
	s.mu.Unlock()

	var err error
	if saved {
		err = s.client.UnsaveEvent(ctx, eventID)
	} else {
		err = s.client.SaveEvent(ctx, eventID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec.view.SavePending = false
	if rec.gen != gen {
		snapshot := rec.view
		return &snapshot, err
	}
	if err != nil {
		rec.view.SaveErr = err
		snapshot := rec.view
		return &snapshot, err
	}
	rec.view.Saved = !saved
	snapshot := rec.view
	return &snapshot, nil
}

// Leave invalidates the view's current generation so any probe or toggle
// still in flight resolves into the void.
func (s *ReservationService) Leave(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.views[eventID]; ok {
		rec.gen++
	}
}

// Invalidate drops the view entirely. Used by the delete cascade.
func (s *ReservationService) Invalidate(eventID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, eventID)
}

func (s *ReservationService) ensure(eventID string) *viewRecord {
	rec, ok := s.views[eventID]
	if !ok {
		rec = &viewRecord{view: entities.ReservationView{EventID: eventID}}
		s.views[eventID] = rec
	}
	return rec
}

func (s *ReservationService) applyEvent(eventID string, gen uint64, event *entities.Event, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.views[eventID]
	if !ok || rec.gen != gen {
		return
	}
	if err != nil {
		rec.view.EventErr = err
		return
	}
	rec.view.Event = event
	if !rec.seatsFromToggle {
		rec.view.SeatsRemaining = event.Capacity.SeatsRemaining
		rec.view.SeatsKnown = true
	}
}

func (s *ReservationService) applyStatus(eventID string, gen uint64, status entities.ReservationStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.views[eventID]
	if !ok || rec.gen != gen || rec.view.State == entities.RsvpPending {
		return
	}
	if err != nil {
		// Fail open: an unreachable or unauthenticated probe renders as the
		// non-reserved default instead of blocking the page.
		rec.view.State = entities.RsvpNotReserved
		if domain.Code(err) != "not_authenticated" {
			rec.view.StatusErr = err
		}
		return
	}
	if status == entities.StatusReserved {
		rec.view.State = entities.RsvpReserved
	} else {
		rec.view.State = entities.RsvpNotReserved
	}
}

func (s *ReservationService) applySaved(eventID string, gen uint64, entries []entities.SavedEntry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.views[eventID]
	if !ok || rec.gen != gen {
		return
	}
	if err != nil {
		rec.view.Saved = false
		if domain.Code(err) != "not_authenticated" {
			rec.view.SavedErr = err
		}
		return
	}
	rec.view.Saved = false
	for i := range entries {
		if entries[i].Event.ID == eventID {
			rec.view.Saved = true
			break
		}
	}
}
