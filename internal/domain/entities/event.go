package entities

import "time"

type EventMode string

const (
	ModeInPerson EventMode = "Inperson"
	ModeOnline   EventMode = "Online"
)

type Price struct {
	Amount   float64
	Currency string
}

type Capacity struct {
	Total          int
	SeatsRemaining int
}

type Location struct {
	Address  string
	City     string
	PostCode string
	Country  string
}

type Organizer struct {
	ID   string
	Name string
}

type Event struct {
	ID          string
	Title       string
	Description string
	Mode        EventMode
	Category    string
	StartAt     time.Time
	EndAt       time.Time
	CoverURL    string
	Website     string
	OnlineURL   string
	Tags        []string
	Price       Price
	Capacity    Capacity
	Location    *Location // nil unless Mode == ModeInPerson
	Organizer   Organizer
}

func (e *Event) IsInPerson() bool {
	return e.Mode == ModeInPerson
}

// IsFull reports whether the event has no seats left according to the most
// recently fetched counter. Advisory only: the server is authoritative.
func (e *Event) IsFull() bool {
	return e.Capacity.SeatsRemaining <= 0
}

// ListFilter is the query the listing surface serializes for the server.
// The server owns filtering and pagination entirely.
type ListFilter struct {
	Query      string
	PostalCode string
	Category   string // CategoryAll means no category filter
	Page       int    // 1-based
	PageSize   int
}
