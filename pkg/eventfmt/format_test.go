package eventfmt

import (
	"strings"
	"testing"
	"time"

	"eventsphere/internal/domain/entities"
)

func TestFormatDateRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 14, 17, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 14, 20, 30, 0, 0, time.UTC)

	got := FormatDateRange(start, end)
	want := "Sat, 14 Jun 2025 • 19:00–22:30 CEST"
	if got != want {
		t.Errorf("FormatDateRange = %q, want %q", got, want)
	}

	if got := FormatDateRange(time.Time{}, end); got != "" {
		t.Errorf("zero start should render empty, got %q", got)
	}

	if got := FormatDateRange(start, time.Time{}); !strings.HasSuffix(got, "19:00 CEST") {
		t.Errorf("open-ended range = %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		price entities.Price
		want  string
	}{
		{entities.Price{Amount: 0, Currency: "EUR"}, "FREE"},
		{entities.Price{Amount: 12.5, Currency: "EUR"}, "€12.50"},
		{entities.Price{Amount: 3, Currency: "USD"}, "$3.00"},
		{entities.Price{Amount: 8, Currency: "CHF"}, "CHF 8.00"},
		{entities.Price{Amount: 9.99}, "€9.99"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.price); got != tc.want {
			t.Errorf("FormatPrice(%+v) = %q, want %q", tc.price, got, tc.want)
		}
	}
}

func TestAddressText(t *testing.T) {
	t.Parallel()

	loc := &entities.Location{Address: "Damrak 1", City: "Amsterdam", Country: "NL"}
	if got := AddressText(loc); got != "Damrak 1, Amsterdam, NL" {
		t.Errorf("AddressText = %q", got)
	}
	if got := AddressText(nil); got != "" {
		t.Errorf("nil location should render empty, got %q", got)
	}
}

func TestMapLink(t *testing.T) {
	t.Parallel()

	loc := &entities.Location{City: "Amsterdam", PostCode: "1012 AB"}
	got := MapLink(loc)
	if !strings.HasPrefix(got, "https://www.google.com/maps/search/?api=1&query=") {
		t.Errorf("MapLink = %q", got)
	}
	if strings.Contains(got, " ") {
		t.Errorf("MapLink not escaped: %q", got)
	}
	if MapLink(nil) != "" {
		t.Error("nil location should yield no link")
	}
}

func TestShareLinks(t *testing.T) {
	t.Parallel()

	links := ShareLinks("Go Meetup", "https://example.com/events/e1")
	for _, network := range []string{"Facebook", "X", "LinkedIn", "WhatsApp"} {
		if links[network] == "" {
			t.Errorf("missing %s link", network)
		}
	}
	if !strings.Contains(links["X"], "Go+Meetup") {
		t.Errorf("X link missing the title: %q", links["X"])
	}
}
