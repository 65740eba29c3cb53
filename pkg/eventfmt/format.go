package eventfmt

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"eventsphere/internal/domain/entities"
	"eventsphere/pkg/tz"
)

// FormatDateRange renders an event time window in the product's canonical
// display timezone, e.g. "Sat, 14 Jun 2025 • 19:00–22:30 CEST".
func FormatDateRange(startAt, endAt time.Time) string {
	if startAt.IsZero() {
		return ""
	}
	start := startAt.In(tz.Amsterdam)
	end := endAt.In(tz.Amsterdam)

	day := start.Format("Mon, 02 Jan 2006")
	zone, _ := start.Zone()

	if endAt.IsZero() {
		return fmt.Sprintf("%s • %s %s", day, start.Format("15:04"), zone)
	}
	return fmt.Sprintf("%s • %s–%s %s", day, start.Format("15:04"), end.Format("15:04"), zone)
}

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// FormatPrice renders a price, with a zero amount shown as FREE.
func FormatPrice(p entities.Price) string {
	if p.Amount == 0 {
		return "FREE"
	}
	currency := p.Currency
	if currency == "" {
		currency = "EUR"
	}
	if sym, ok := currencySymbols[currency]; ok {
		return fmt.Sprintf("%s%.2f", sym, p.Amount)
	}
	return fmt.Sprintf("%s %.2f", currency, p.Amount)
}

// AddressText joins the non-empty parts of a location into a single line.
// Returns "" for online events (nil location).
func AddressText(loc *entities.Location) string {
	if loc == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{loc.Address, loc.City, loc.PostCode, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// MapLink builds a Google Maps search URL for an in-person location.
func MapLink(loc *entities.Location) string {
	addr := AddressText(loc)
	if addr == "" {
		return ""
	}
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(addr)
}

// ShareLinks returns social share URLs for an event page URL.
func ShareLinks(title, pageURL string) map[string]string {
	escapedURL := url.QueryEscape(pageURL)
	escapedTitle := url.QueryEscape(title)
	return map[string]string{
		"Facebook": "https://www.facebook.com/sharer/sharer.php?u=" + escapedURL,
		"X":        "https://twitter.com/intent/tweet?text=" + escapedTitle + "&url=" + escapedURL,
		"LinkedIn": "https://www.linkedin.com/sharing/share-offsite/?url=" + escapedURL,
		"WhatsApp": "https://wa.me/?text=" + url.QueryEscape(title+" "+pageURL),
	}
}
