package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"eventsphere/internal/domain/entities"
)

// Browse runs the listing surface. The initial filter comes from flags;
// afterwards an interactive loop adjusts it. Every change re-queries with
// the current field values, and any non-page filter change resets the page
// to 1.
func (h *Handler) Browse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	fs.SetOutput(h.out)
	query := fs.String("q", "", "free-text search")
	postal := fs.String("postal", "", "postal code filter")
	category := fs.String("category", entities.CategoryAll, "category filter (All = none)")
	page := fs.Int("page", 1, "page number")
	pageSize := fs.Int("size", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := entities.ListFilter{
		Query:      *query,
		PostalCode: *postal,
		Category:   *category,
		Page:       *page,
		PageSize:   *pageSize,
	}

	for {
		page, err := h.browse.ListEvents(ctx, filter)
		if err != nil {
			h.printError(err)
			return err
		}
		filter.Page = page.Page
		filter.PageSize = page.PageSize
		h.renderListing(page)

		cmd, arg, ok := h.promptListing()
		if !ok {
			return nil
		}
		switch cmd {
		case "n":
			if filter.Page < page.PageCount {
				filter.Page++
			}
		case "p":
			if filter.Page > 1 {
				filter.Page--
			}
		case "g":
			if n, err := strconv.Atoi(arg); err == nil {
				filter.Page = n
			}
		case "q":
			filter.Query = arg
			filter.Page = 1
		case "pc":
			filter.PostalCode = arg
			filter.Page = 1
		case "c":
			filter.Category = arg
			filter.Page = 1
		case "open":
			if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(page.Items) {
				if err := h.showEvent(ctx, page.Items[n-1].ID); err != nil {
					h.printError(err)
				}
			}
		case "quit", "exit":
			return nil
		}
	}
}

func (h *Handler) renderListing(page *entities.EventPage) {
	if len(page.Items) == 0 {
		fmt.Fprintln(h.out, h.t("list.empty", nil))
	}
	for i := range page.Items {
		renderEventLine(h.out, i+1, &page.Items[i])
	}
	fmt.Fprintln(h.out, h.t("list.summary", map[string]any{
		"Page":      page.Page,
		"PageCount": page.PageCount,
		"Total":     page.Total,
	}))
	renderPageStrip(h.out, page.Page, page.PageCount)
}

// promptListing reads one listing command: n, p, g <page>, q <text>,
// pc <postal>, c <category>, open <n>, quit. EOF ends the loop.
func (h *Handler) promptListing() (cmd, arg string, ok bool) {
	fmt.Fprint(h.out, "> ")
	line, err := h.in.ReadString('\n')
	if err != nil && line == "" {
		return "", "", false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", "", false
	}
	parts := strings.SplitN(line, " ", 2)
	cmd = parts[0]
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg, true
}
