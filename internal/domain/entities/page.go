package entities

// EventPage is one page of listing results plus the derived page math.
type EventPage struct {
	Items     []Event
	Total     int
	Page      int
	PageSize  int
	PageCount int
}
