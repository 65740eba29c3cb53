package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
)

func validDraft() *entities.EventDraft {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	return &entities.EventDraft{
		Title:    "Go Meetup",
		Mode:     entities.ModeInPerson,
		Category: "Tech",
		StartAt:  start,
		EndAt:    start.Add(2 * time.Hour),
		Price:    entities.Price{Amount: 0, Currency: "EUR"},
		Capacity: 50,
		Location: &entities.Location{City: "Amsterdam"},
	}
}

func TestCreateEvent(t *testing.T) {
	t.Parallel()

	t.Run("valid draft reaches the server", func(t *testing.T) {
		t.Parallel()
		svc := NewOrganizerService(newFakeEvents())
		event, err := svc.CreateEvent(context.Background(), validDraft())
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
		if event.Title != "Go Meetup" {
			t.Errorf("title = %q", event.Title)
		}
	})

	t.Run("online drafts never carry a location", func(t *testing.T) {
		t.Parallel()
		draft := validDraft()
		draft.Mode = entities.ModeOnline
		svc := NewOrganizerService(newFakeEvents())
		event, err := svc.CreateEvent(context.Background(), draft)
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
		if event.Location != nil {
			t.Error("location should be stripped for online events")
		}
	})

	t.Run("validation failures block the network call", func(t *testing.T) {
		t.Parallel()
		cases := []struct {
			name   string
			mutate func(*entities.EventDraft)
			want   error
		}{
			{"missing title", func(d *entities.EventDraft) { d.Title = "  " }, domain.ErrTitleRequired},
			{"bad category", func(d *entities.EventDraft) { d.Category = "Nope" }, domain.ErrCategoryRequired},
			{"missing dates", func(d *entities.EventDraft) { d.StartAt = time.Time{} }, domain.ErrDatesRequired},
			{"end before start", func(d *entities.EventDraft) { d.EndAt = d.StartAt.Add(-time.Hour) }, domain.ErrEndBeforeStart},
			{"zero capacity", func(d *entities.EventDraft) { d.Capacity = 0 }, domain.ErrCapacityInvalid},
			{"negative price", func(d *entities.EventDraft) { d.Price.Amount = -1 }, domain.ErrPriceInvalid},
			{"in-person without city", func(d *entities.EventDraft) { d.Location = &entities.Location{} }, domain.ErrLocationRequired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				draft := validDraft()
				tc.mutate(draft)
				svc := NewOrganizerService(newFakeEvents())
				if _, err := svc.CreateEvent(context.Background(), draft); !errors.Is(err, tc.want) {
					t.Errorf("err = %v, want %v", err, tc.want)
				}
			})
		}
	})
}
