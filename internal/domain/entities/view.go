package entities

// RsvpState is the client-side RSVP state machine for one (user, event) view.
type RsvpState int

const (
	// RsvpUnknown: no probe has resolved yet. Rendered as the non-reserved
	// default so the primary action is optimistically available.
	RsvpUnknown RsvpState = iota
	RsvpNotReserved
	RsvpReserved
	// RsvpPending: a toggle is in flight. The only state in which the
	// action control is disabled.
	RsvpPending
)

func (s RsvpState) String() string {
	switch s {
	case RsvpNotReserved:
		return "not reserved"
	case RsvpReserved:
		return "reserved"
	case RsvpPending:
		return "pending"
	default:
		return "unknown"
	}
}

// ReservationView is the single source of truth a surface renders for one
// event: server-fetched state merged with the outcome of local mutations.
// Probe errors are kept per segment so one failed probe never blocks the
// others from rendering.
type ReservationView struct {
	EventID string
	Event   *Event

	State          RsvpState
	SeatsRemaining int
	SeatsKnown     bool
	Saved          bool
	SavePending    bool

	EventErr  error
	StatusErr error
	SavedErr  error
	RsvpErr   error
	SaveErr   error
}

func (v *ReservationView) Reserved() bool {
	return v.State == RsvpReserved
}

// RsvpEnabled reports whether the RSVP control is usable. A holder may
// always cancel; a non-holder is locked out of a full event. The advisory
// seat check never applies before a seat count is known.
func (v *ReservationView) RsvpEnabled() bool {
	if v.State == RsvpPending {
		return false
	}
	if v.Reserved() {
		return true
	}
	return !v.SeatsKnown || v.SeatsRemaining > 0
}
