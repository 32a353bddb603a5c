package links

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Links holds the externally-derived booking links for a place. They are
// computed from the place identity, never stored.
type Links struct {
	GooglePlacesURL string `json:"google_places_url"`
	BookingURL      string `json:"booking_url"`
}

// ForPlace derives booking links deterministically from the place name and
// coordinates. Same input always yields the same links.
func ForPlace(name string, lat, lng decimal.Decimal) Links {
	query := url.QueryEscape(strings.TrimSpace(name))
	return Links{
		GooglePlacesURL: fmt.Sprintf(
			"https://www.google.com/maps/search/?api=1&query=%s&center=%s,%s",
			query, lat.String(), lng.String(),
		),
		BookingURL: fmt.Sprintf(
			"https://www.booking.com/searchresults.html?ss=%s&latitude=%s&longitude=%s",
			query, lat.String(), lng.String(),
		),
	}
}
