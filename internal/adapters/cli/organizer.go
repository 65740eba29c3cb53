package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"eventsphere/internal/domain"
	"eventsphere/internal/domain/entities"
	"eventsphere/pkg/tz"
)

// Create builds an event from flags and submits it: `create -title ... -start ...`.
// Validation failures are reported inline without touching the server.
func (h *Handler) Create(ctx context.Context, args []string) error {
	if _, err := h.requireSession(ctx, append([]string{"create"}, args...)); err != nil {
		return err
	}

	draft, err := h.parseDraft("create", args, nil)
	if err != nil {
		if domain.IsValidation(err) {
			h.printError(err)
		}
		return err
	}

	event, err := h.organizer.CreateEvent(ctx, draft)
	if err != nil {
		h.printError(err)
		return err
	}
	fmt.Fprintf(h.out, "Created %s (%s)\n", event.Title, event.ID)
	return nil
}

// Edit updates a hosted event: `edit <event-id> -title ...`. Omitted flags
// keep the current value; the full draft is re-validated before submission.
func (h *Handler) Edit(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: edit <event-id> [flags]")
	}
	eventID := args[0]

	if _, err := h.requireSession(ctx, append([]string{"edit"}, args...)); err != nil {
		return err
	}

	current, err := h.browse.GetEvent(ctx, eventID)
	if err != nil {
		h.printError(err)
		return err
	}

	draft, err := h.parseDraft("edit", args[1:], current)
	if err != nil {
		if domain.IsValidation(err) {
			h.printError(err)
		}
		return err
	}

	event, err := h.organizer.UpdateEvent(ctx, eventID, draft)
	if err != nil {
		h.printError(err)
		return err
	}
	fmt.Fprintf(h.out, "Updated %s (%s)\n", event.Title, event.ID)
	return nil
}

// parseDraft turns organizer flags into a validated draft. When base is
// non-nil its values seed the flag defaults, so edits can be partial.
func (h *Handler) parseDraft(name string, args []string, base *entities.Event) (*entities.EventDraft, error) {
	seed := entities.EventDraft{
		Mode:     entities.ModeInPerson,
		Price:    entities.Price{Currency: "EUR"},
		Capacity: 0,
	}
	if base != nil {
		seed = entities.EventDraft{
			Title:       base.Title,
			Description: base.Description,
			Mode:        base.Mode,
			Category:    base.Category,
			StartAt:     base.StartAt,
			EndAt:       base.EndAt,
			CoverURL:    base.CoverURL,
			Website:     base.Website,
			OnlineURL:   base.OnlineURL,
			Price:       base.Price,
			Capacity:    base.Capacity.Total,
			Location:    base.Location,
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(h.out)
	title := fs.String("title", seed.Title, "event title")
	description := fs.String("desc", seed.Description, "event description")
	mode := fs.String("mode", string(seed.Mode), "Inperson or Online")
	category := fs.String("category", seed.Category, "event category")
	start := fs.String("start", formatFlagTime(seed.StartAt), "start date/time (2006-01-02 15:04)")
	end := fs.String("end", formatFlagTime(seed.EndAt), "end date/time (2006-01-02 15:04)")
	cover := fs.String("cover", seed.CoverURL, "cover image URL")
	website := fs.String("website", seed.Website, "event website")
	onlineURL := fs.String("url", seed.OnlineURL, "join URL for online events")
	amount := fs.Float64("price", seed.Price.Amount, "ticket price (0 = free)")
	currency := fs.String("currency", seed.Price.Currency, "price currency")
	capacity := fs.Int("capacity", seed.Capacity, "total seats")
	address := fs.String("address", locationField(seed.Location, func(l *entities.Location) string { return l.Address }), "street address")
	city := fs.String("city", locationField(seed.Location, func(l *entities.Location) string { return l.City }), "city")
	postCode := fs.String("zip", locationField(seed.Location, func(l *entities.Location) string { return l.PostCode }), "postal code")
	country := fs.String("country", locationField(seed.Location, func(l *entities.Location) string { return l.Country }), "country")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	startAt, err := parseFlagTime(*start)
	if err != nil {
		return nil, domain.ErrDatesRequired
	}
	endAt, err := parseFlagTime(*end)
	if err != nil {
		return nil, domain.ErrDatesRequired
	}

	draft := &entities.EventDraft{
		Title:       strings.TrimSpace(*title),
		Description: *description,
		Mode:        entities.EventMode(*mode),
		Category:    *category,
		StartAt:     startAt,
		EndAt:       endAt,
		CoverURL:    *cover,
		Website:     *website,
		OnlineURL:   *onlineURL,
		Price:       entities.Price{Amount: *amount, Currency: *currency},
		Capacity:    *capacity,
	}
	if draft.Mode == entities.ModeInPerson {
		draft.Location = &entities.Location{
			Address:  *address,
			City:     *city,
			PostCode: *postCode,
			Country:  *country,
		}
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return draft, nil
}

func formatFlagTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(tz.Amsterdam).Format("2006-01-02 15:04")
}

func parseFlagTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02 15:04", s, tz.Amsterdam)
}

func locationField(l *entities.Location, get func(*entities.Location) string) string {
	if l == nil {
		return ""
	}
	return get(l)
}
