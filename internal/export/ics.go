package export

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"eventsphere/internal/domain/entities"
	"eventsphere/pkg/eventfmt"
)

// BuildCalendar renders events as an iCalendar feed so attendees can pull
// their RSVPs into a regular calendar client.
func BuildCalendar(events []entities.Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EventSphere//events//EN")

	now := time.Now().UTC()
	for i := range events {
		event := &events[i]
		entry := cal.AddEvent(event.ID + "@eventsphere")
		entry.SetDtStampTime(now)
		entry.SetStartAt(event.StartAt)
		if !event.EndAt.IsZero() {
			entry.SetEndAt(event.EndAt)
		}
		entry.SetSummary(event.Title)
		if event.Description != "" {
			entry.SetDescription(event.Description)
		}
		if event.IsInPerson() {
			if addr := eventfmt.AddressText(event.Location); addr != "" {
				entry.SetLocation(addr)
			}
		} else if event.OnlineURL != "" {
			entry.SetURL(event.OnlineURL)
		}
	}
	return cal
}

// WriteFile serializes events to path as an .ics file.
func WriteFile(path string, events []entities.Event) error {
	cal := BuildCalendar(events)
	if err := os.WriteFile(path, []byte(cal.Serialize()), 0o644); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}
