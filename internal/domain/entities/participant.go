package entities

import "time"

// Participant is an attendee of a hosted event, visible to its organizer.
type Participant struct {
	ID       string
	Name     string
	Email    string
	Status   ReservationStatus
	JoinedAt time.Time
}
