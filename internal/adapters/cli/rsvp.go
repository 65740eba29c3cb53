package cli

import (
	"context"
	"fmt"

	"eventsphere/internal/domain/entities"
	"eventsphere/pkg/eventfmt"
)

// RSVP toggles the caller's reservation for an event: `rsvp <event-id>`.
// The flow mirrors the web product: load the view, interpose a confirmation
// dialog, then commit and re-render strictly from the server response.
func (h *Handler) RSVP(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: rsvp <event-id>")
	}
	eventID := args[0]

	if _, err := h.requireSession(ctx, append([]string{"rsvp"}, args...)); err != nil {
		return err
	}

	view := h.reservations.Load(ctx, eventID)
	defer h.reservations.Leave(eventID)
	if view.EventErr != nil {
		h.printError(view.EventErr)
		return view.EventErr
	}

	if !h.confirmRsvp(view) {
		fmt.Fprintln(h.out, h.t("rsvp.aborted", nil))
		return nil
	}

	view, err := h.reservations.ToggleRSVP(ctx, eventID)
	if err != nil {
		// The view already rolled back to its prior state.
		h.printError(err)
		return err
	}

	key := "rsvp.cancelled"
	if view.Reserved() {
		key = "rsvp.reserved"
	}
	fmt.Fprintln(h.out, h.t(key, map[string]any{"Seats": view.SeatsRemaining}))
	return nil
}

// confirmRsvp shows the confirmation dialog. The confirm action is locked
// for a full event unless the user already holds a reservation; a holder
// may always cancel.
func (h *Handler) confirmRsvp(view *entities.ReservationView) bool {
	event := view.Event

	titleKey := "rsvp.confirm_title"
	questionKey := "rsvp.confirm_question"
	if view.Reserved() {
		titleKey = "rsvp.cancel_title"
		questionKey = "rsvp.cancel_question"
	}

	fmt.Fprintf(h.out, "--- %s ---\n", h.t(titleKey, nil))
	fmt.Fprintln(h.out, event.Title)
	fmt.Fprintln(h.out, eventfmt.FormatDateRange(event.StartAt, event.EndAt))
	if event.IsInPerson() {
		if addr := eventfmt.AddressText(event.Location); addr != "" {
			fmt.Fprintln(h.out, addr)
		}
	}
	fmt.Fprintf(h.out, "%s: %s\n", "Price", eventfmt.FormatPrice(event.Price))
	fmt.Fprintln(h.out, h.t("detail.seats", map[string]any{
		"Seats": view.SeatsRemaining,
		"Total": event.Capacity.Total,
	}))

	if !view.RsvpEnabled() {
		fmt.Fprintln(h.out, h.t("error.event_full", nil))
		return false
	}
	return h.confirm(questionKey, nil)
}

// Save toggles saved-set membership: `save <event-id>`. Non-critical by
// design: a failure prints a small inline message and nothing else changes.
func (h *Handler) Save(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: save <event-id>")
	}
	eventID := args[0]

	if _, err := h.requireSession(ctx, append([]string{"save"}, args...)); err != nil {
		return err
	}

	h.reservations.Load(ctx, eventID)
	defer h.reservations.Leave(eventID)

	view, err := h.reservations.ToggleSave(ctx, eventID)
	if err != nil {
		h.printError(err)
		return err
	}
	if view.Saved {
		fmt.Fprintln(h.out, h.t("save.saved", nil))
	} else {
		fmt.Fprintln(h.out, h.t("save.unsaved", nil))
	}
	return nil
}
