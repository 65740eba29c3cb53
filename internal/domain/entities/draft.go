package entities

import (
	"strings"
	"time"

	"eventsphere/internal/domain"
)

// EventDraft is the organizer's input for creating or editing an event.
type EventDraft struct {
	Title       string
	Description string
	Mode        EventMode
	Category    string
	StartAt     time.Time
	EndAt       time.Time
	CoverURL    string
	Website     string
	OnlineURL   string
	Price       Price
	Capacity    int
	Location    *Location
}

// Validate runs the client-side form checks. A failure blocks submission
// without a network call.
func (d *EventDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return domain.ErrTitleRequired
	}
	if !ValidCategory(d.Category) {
		return domain.ErrCategoryRequired
	}
	if d.StartAt.IsZero() || d.EndAt.IsZero() {
		return domain.ErrDatesRequired
	}
	if !d.EndAt.After(d.StartAt) {
		return domain.ErrEndBeforeStart
	}
	if d.Capacity <= 0 {
		return domain.ErrCapacityInvalid
	}
	if d.Price.Amount < 0 {
		return domain.ErrPriceInvalid
	}
	if d.Mode == ModeInPerson && (d.Location == nil || strings.TrimSpace(d.Location.City) == "") {
		return domain.ErrLocationRequired
	}
	return nil
}
