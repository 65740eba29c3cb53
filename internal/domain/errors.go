package domain

import "errors"

// Error is a domain error carrying a stable code. Codes are the contract
// between the application layer and the user-facing adapters: adapters
// resolve them to localized messages, never the raw error text.
type Error struct {
	code string
	text string
}

func (e *Error) Error() string { return e.text }

func newError(code, text string) *Error {
	return &Error{code: code, text: text}
}

// Domain errors.
var (
	ErrFetchFailed       = newError("fetch_failed", "could not load data from the server")
	ErrMalformedResponse = newError("malformed_response", "unexpected response shape from the server")
	ErrEventNotFound     = newError("event_not_found", "event not found")
	ErrRsvpRejected      = newError("rsvp_rejected", "the server declined the RSVP change")
	ErrEventFull         = newError("event_full", "the event is full")
	ErrTogglePending     = newError("toggle_pending", "a previous RSVP change is still in flight")
	ErrSaveToggleFailed  = newError("save_toggle_failed", "could not update saved events")
	ErrNotAuthenticated  = newError("not_authenticated", "login required")
	ErrNotOrganizer      = newError("not_organizer", "only the organizer can perform this action")

	ErrTitleRequired    = newError("title_required", "title is required")
	ErrCategoryRequired = newError("category_required", "a valid category is required")
	ErrDatesRequired    = newError("dates_required", "start and end date/time are required")
	ErrEndBeforeStart   = newError("end_before_start", "end time must be after start time")
	ErrCapacityInvalid  = newError("capacity_invalid", "capacity must be a positive number")
	ErrPriceInvalid     = newError("price_invalid", "price must not be negative")
	ErrLocationRequired = newError("location_required", "an in-person event needs a location")
)

var validationErrors = map[string]bool{
	"title_required":    true,
	"category_required": true,
	"dates_required":    true,
	"end_before_start":  true,
	"capacity_invalid":  true,
	"price_invalid":     true,
	"location_required": true,
}

// Code extracts the stable code from err, or "" when err carries none.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}

// IsValidation reports whether err is a client-side form validation failure,
// which blocks submission without any network call.
func IsValidation(err error) bool {
	return validationErrors[Code(err)]
}
