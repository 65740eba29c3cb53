package cli

import (
	"fmt"
	"io"
	"strings"

	"eventsphere/internal/domain/entities"
	"eventsphere/pkg/eventfmt"
	"eventsphere/pkg/paging"
)

// pageWindowWidth caps the pagination strip at 5 page numbers centered on
// the current page.
const pageWindowWidth = 5

func renderEventLine(out io.Writer, index int, event *entities.Event) {
	city := "-"
	if event.Location != nil && event.Location.City != "" {
		city = event.Location.City
	}
	if event.Mode == entities.ModeOnline {
		city = "Online"
	}
	fmt.Fprintf(out, "%3d. %-40s  %-16s  %s\n", index, truncate(event.Title, 40), city, eventfmt.FormatDateRange(event.StartAt, event.EndAt))
}

func renderEventCard(out io.Writer, event *entities.Event) {
	fmt.Fprintf(out, "%s\n", event.Title)
	fmt.Fprintf(out, "%s\n", strings.Repeat("=", len(event.Title)))
	if event.Description != "" {
		fmt.Fprintf(out, "%s\n\n", event.Description)
	}
	if event.Category != "" {
		fmt.Fprintf(out, "Category:  %s\n", event.Category)
	}
	if len(event.Tags) > 0 {
		fmt.Fprintf(out, "Tags:      %s\n", strings.Join(event.Tags, ", "))
	}
	if event.Organizer.Name != "" {
		fmt.Fprintf(out, "Organizer: %s\n", event.Organizer.Name)
	}
	fmt.Fprintf(out, "When:      %s\n", eventfmt.FormatDateRange(event.StartAt, event.EndAt))
	if event.IsInPerson() {
		if addr := eventfmt.AddressText(event.Location); addr != "" {
			fmt.Fprintf(out, "Where:     %s\n", addr)
			fmt.Fprintf(out, "Map:       %s\n", eventfmt.MapLink(event.Location))
		}
	} else if event.OnlineURL != "" {
		fmt.Fprintf(out, "Join link: %s\n", event.OnlineURL)
	}
	fmt.Fprintf(out, "Price:     %s\n", eventfmt.FormatPrice(event.Price))
	if event.Website != "" {
		fmt.Fprintf(out, "Website:   %s\n", event.Website)
	}
}

func renderShareLinks(out io.Writer, event *entities.Event, baseURL string) {
	pageURL := strings.TrimRight(baseURL, "/") + "/events/" + event.ID
	fmt.Fprintln(out, "Share:")
	links := eventfmt.ShareLinks(event.Title, pageURL)
	for _, name := range []string{"Facebook", "X", "LinkedIn", "WhatsApp"} {
		fmt.Fprintf(out, "  %-9s %s\n", name, links[name])
	}
}

// renderPageStrip prints the pagination window, e.g. "1 2 [3] 4 5".
func renderPageStrip(out io.Writer, page, pageCount int) {
	window := paging.Window(page, pageCount, pageWindowWidth)
	parts := make([]string, len(window))
	for i, p := range window {
		if p == page {
			parts[i] = fmt.Sprintf("[%d]", p)
		} else {
			parts[i] = fmt.Sprintf("%d", p)
		}
	}
	fmt.Fprintf(out, "Pages: %s\n", strings.Join(parts, " "))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
