package cli

import (
	"context"
	"flag"
	"fmt"

	"eventsphere/internal/domain/entities"
	"eventsphere/internal/export"
)

// Export writes the caller's attending or saved events to an .ics file:
// `export [-o file] [attending|saved]`.
func (h *Handler) Export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(h.out)
	path := fs.String("o", "events.ics", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	source := fs.Arg(0)
	if source == "" {
		source = "attending"
	}

	if _, err := h.requireSession(ctx, append([]string{"export"}, args...)); err != nil {
		return err
	}

	var events []entities.Event
	switch source {
	case "attending":
		entries, err := h.myEvents.Attending(ctx)
		if err != nil {
			h.printError(err)
			return err
		}
		for _, e := range entries {
			if e.Status == entities.StatusReserved {
				events = append(events, e.Event)
			}
		}
	case "saved":
		entries, err := h.myEvents.Saved(ctx)
		if err != nil {
			h.printError(err)
			return err
		}
		for _, e := range entries {
			events = append(events, e.Event)
		}
	default:
		return fmt.Errorf("usage: export [-o file] [attending|saved]")
	}

	if err := export.WriteFile(*path, events); err != nil {
		return err
	}
	fmt.Fprintln(h.out, h.t("export.done", map[string]any{"Count": len(events), "Path": *path}))
	return nil
}
