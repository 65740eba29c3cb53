package application

import (
	"context"
	"sync"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
)

// fakeEvents is an in-memory EventRepository. List serves slices of the
// configured items according to the filter's page and size, the way the
// server would.
type fakeEvents struct {
	mu      sync.Mutex
	items   []entities.Event
	byID    map[string]*entities.Event
	getErr  error
	deleted []string
	calls   []entities.ListFilter

	// getGate, when set, blocks Get until the channel is closed.
	getGate chan struct{}
}

func newFakeEvents(items ...entities.Event) *fakeEvents {
	f := &fakeEvents{items: items, byID: make(map[string]*entities.Event)}
	for i := range f.items {
		f.byID[f.items[i].ID] = &f.items[i]
	}
	return f
}

func (f *fakeEvents) List(_ context.Context, filter entities.ListFilter) ([]entities.Event, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, filter)

	start := (filter.Page - 1) * filter.PageSize
	end := start + filter.PageSize
	if start > len(f.items) {
		start = len(f.items)
	}
	if end > len(f.items) {
		end = len(f.items)
	}
	page := make([]entities.Event, end-start)
	copy(page, f.items[start:end])
	return page, len(f.items), nil
}

func (f *fakeEvents) Get(_ context.Context, id string) (*entities.Event, error) {
	if f.getGate != nil {
		<-f.getGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	event, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEvents) Create(_ context.Context, draft *entities.EventDraft) (*entities.Event, error) {
	event := &entities.Event{
		ID:       "created",
		Title:    draft.Title,
		Mode:     draft.Mode,
		Category: draft.Category,
		StartAt:  draft.StartAt,
		EndAt:    draft.EndAt,
		Price:    draft.Price,
		Capacity: entities.Capacity{Total: draft.Capacity, SeatsRemaining: draft.Capacity},
		Location: draft.Location,
	}
	return event, nil
}

func (f *fakeEvents) Update(_ context.Context, id string, draft *entities.EventDraft) (*entities.Event, error) {
	event, err := f.Get(context.Background(), id)
	if err != nil {
		return nil, err
	}
	event.Title = draft.Title
	event.Location = draft.Location
	return event, nil
}

func (f *fakeEvents) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEvents) Participants(_ context.Context, _ string) ([]entities.Participant, error) {
	return nil, nil
}

func (f *fakeEvents) setSeats(id string, seats int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if event, ok := f.byID[id]; ok {
		event.Capacity.SeatsRemaining = seats
	}
}

func (f *fakeEvents) drop(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
}

// fakeReservations is an in-memory ReservationClient with scriptable
// results and an optional gate to hold a toggle in flight.
type fakeReservations struct {
	mu sync.Mutex

	status    entities.ReservationStatus
	statusErr error

	toggleResult entities.RsvpResult
	toggleErr    error
	toggleGate   chan struct{}
	toggleCalls  int

	saved    []entities.SavedEntry
	savedErr error

	saveErr   error
	unsaveErr error
	saveCalls []string

	attending []entities.AttendingEntry
	hosting   []entities.Event
}

func (f *fakeReservations) ToggleRSVP(_ context.Context, eventID string) (entities.RsvpResult, error) {
	if f.toggleGate != nil {
		<-f.toggleGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.toggleCalls++
	return f.toggleResult, f.toggleErr
}

func (f *fakeReservations) RSVPStatus(_ context.Context, _ string) (entities.ReservationStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.statusErr
}

func (f *fakeReservations) SaveEvent(_ context.Context, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls = append(f.saveCalls, "save:"+eventID)
	return f.saveErr
}

func (f *fakeReservations) UnsaveEvent(_ context.Context, eventID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls = append(f.saveCalls, "unsave:"+eventID)
	return f.unsaveErr
}

func (f *fakeReservations) ListSaved(_ context.Context) ([]entities.SavedEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saved, f.savedErr
}

func (f *fakeReservations) Attending(_ context.Context) ([]entities.AttendingEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attending, nil
}

func (f *fakeReservations) Hosting(_ context.Context) ([]entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hosting, nil
}

// fakeNotifier records the alerts it receives.
type fakeNotifier struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeNotifier) Notify(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeNotifier) sent() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.texts))
	copy(out, f.texts)
	return out
}

// keyTranslator renders the key plus the Title data field, enough to assert
// which message was produced.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, data map[string]any) string {
	if title, ok := data["Title"].(string); ok {
		return key + ":" + title
	}
	return key
}
