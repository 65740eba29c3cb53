package cli

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Watch polls the given events on a schedule and alerts when a full one
// regains seats: `watch <event-id> [event-id...]`. Runs until the context
// is cancelled.
func (h *Handler) Watch(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: watch <event-id> [event-id...]")
	}
	if h.watcher == nil {
		return fmt.Errorf("watch mode is not configured")
	}

	for _, id := range args {
		// Fail fast on ids that do not resolve to an event.
		if _, err := h.browse.GetEvent(ctx, id); err != nil {
			h.printError(err)
			return err
		}
		h.watcher.Watch(id)
	}

	// First poll runs immediately so the baseline seat counts are recorded
	// before the schedule takes over.
	h.watcher.Poll(ctx)

	c := cron.New()
	if _, err := c.AddFunc(h.watchCron, func() { h.watcher.Poll(ctx) }); err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", h.watchCron, err)
	}
	c.Start()
	defer func() { <-c.Stop().Done() }()

	fmt.Fprintln(h.out, h.t("watch.started", map[string]any{"Count": h.watcher.Watched()}))
	<-ctx.Done()
	return nil
}
