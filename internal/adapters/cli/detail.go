package cli

import (
	"context"
	"fmt"
)

// Show renders the event detail surface: `show <event-id>`.
func (h *Handler) Show(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: show <event-id>")
	}
	return h.showEvent(ctx, args[0])
}

// showEvent loads the reservation view (three independent probes) and
// renders each segment on its own: a failed probe only blanks its segment.
func (h *Handler) showEvent(ctx context.Context, eventID string) error {
	view := h.reservations.Load(ctx, eventID)
	defer h.reservations.Leave(eventID)

	if view.EventErr != nil {
		// Without the event body there is nothing to render.
		h.printError(view.EventErr)
		return view.EventErr
	}

	renderEventCard(h.out, view.Event)
	fmt.Fprintln(h.out, h.t("detail.seats", map[string]any{
		"Seats": view.SeatsRemaining,
		"Total": view.Event.Capacity.Total,
	}))

	fmt.Fprintf(h.out, "RSVP:      %s", view.State)
	if !view.RsvpEnabled() && !view.Reserved() {
		fmt.Fprintf(h.out, " (%s)", h.t("error.event_full", nil))
	}
	fmt.Fprintln(h.out)
	if view.StatusErr != nil {
		fmt.Fprintln(h.out, h.t("detail.status_unavailable", nil))
	}

	if view.Saved {
		fmt.Fprintln(h.out, "Saved:     ♥")
	} else {
		fmt.Fprintln(h.out, "Saved:     ♡")
	}
	if view.SavedErr != nil {
		fmt.Fprintln(h.out, h.t("detail.saved_unavailable", nil))
	}

	renderShareLinks(h.out, view.Event, h.apiBaseURL)
	return nil
}

// Participants lists the attendees of a hosted event.
func (h *Handler) Participants(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: participants <event-id>")
	}
	if _, err := h.requireSession(ctx, append([]string{"participants"}, args...)); err != nil {
		return err
	}

	participants, err := h.organizer.Participants(ctx, args[0])
	if err != nil {
		h.printError(err)
		return err
	}
	for i, p := range participants {
		fmt.Fprintf(h.out, "%3d. %-30s %-12s %s\n", i+1, p.Name, p.Status, p.JoinedAt.Format("2006-01-02"))
	}
	if len(participants) == 0 {
		fmt.Fprintln(h.out, h.t("list.empty", nil))
	}
	return nil
}
