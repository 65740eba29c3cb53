package cli

import (
	"context"
	"fmt"

	"eventsphere/internal/domain/entities"
)

// Attending lists the events the caller has an RSVP for.
func (h *Handler) Attending(ctx context.Context, args []string) error {
	if _, err := h.requireSession(ctx, []string{"attending"}); err != nil {
		return err
	}
	entries, err := h.myEvents.Attending(ctx)
	if err != nil {
		h.printError(err)
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(h.out, h.t("myevents.empty_attending", nil))
		return nil
	}
	for i := range entries {
		renderEventLine(h.out, i+1, &entries[i].Event)
		if entries[i].Status == entities.StatusCancelled {
			fmt.Fprintln(h.out, "     (cancelled)")
		}
	}
	return nil
}

// Hosting lists the events the caller organizes.
func (h *Handler) Hosting(ctx context.Context, args []string) error {
	if _, err := h.requireSession(ctx, []string{"hosting"}); err != nil {
		return err
	}
	events, err := h.myEvents.Hosting(ctx)
	if err != nil {
		h.printError(err)
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(h.out, h.t("myevents.empty_hosting", nil))
		return nil
	}
	for i := range events {
		renderEventLine(h.out, i+1, &events[i])
	}
	return nil
}

// Saved lists the caller's saved events.
func (h *Handler) Saved(ctx context.Context, args []string) error {
	if _, err := h.requireSession(ctx, []string{"saved"}); err != nil {
		return err
	}
	entries, err := h.myEvents.Saved(ctx)
	if err != nil {
		h.printError(err)
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(h.out, h.t("myevents.empty_saved", nil))
		return nil
	}
	for i := range entries {
		renderEventLine(h.out, i+1, &entries[i].Event)
	}
	return nil
}

// Delete removes a hosted event after confirmation: `delete <event-id>`.
// The cascade drops the event from every locally cached list.
func (h *Handler) Delete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: delete <event-id>")
	}
	eventID := args[0]

	if _, err := h.requireSession(ctx, append([]string{"delete"}, args...)); err != nil {
		return err
	}

	event, err := h.browse.GetEvent(ctx, eventID)
	if err != nil {
		h.printError(err)
		return err
	}
	if !h.confirm("myevents.delete_question", map[string]any{"Title": event.Title}) {
		fmt.Fprintln(h.out, h.t("rsvp.aborted", nil))
		return nil
	}

	if err := h.myEvents.DeleteEvent(ctx, eventID); err != nil {
		h.printError(err)
		return err
	}
	fmt.Fprintln(h.out, h.t("myevents.deleted", nil))
	return nil
}
