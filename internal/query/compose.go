// Package query builds the parameter string handed to the discount page.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/prefs"
)

// DefaultRoute is the downstream page that consumes the composed query.
const DefaultRoute = "discount"

// Parameter names read by the discount page.
const (
	ParamURL                  = "url"
	ParamBahnCard             = "bahnCard"
	ParamHasDeutschlandTicket = "hasDeutschlandTicket"
	ParamPassengerAge         = "passengerAge"
	ParamTravelClass          = "travelClass"
)

// Composed is an encoded query string without the leading '?'.
type Composed string

func (c Composed) String() string { return string(c) }

// Field is one key/value pair before encoding.
type Field struct {
	Key   string
	Value string
}

// Fields returns the parameters in wire order.
func Fields(u booking.URL, p prefs.Preferences) []Field {
	return []Field{
		{ParamURL, u.String()},
		{ParamBahnCard, string(p.BahnCard)},
		{ParamHasDeutschlandTicket, strconv.FormatBool(p.HasDeutschlandTicket)},
		{ParamPassengerAge, p.AgeString()},
		{ParamTravelClass, string(p.TravelClass)},
	}
}

// Compose encodes the booking URL and a preferences snapshot. Values are
// written as given; out-of-range ages or unknown tiers pass through.
func Compose(u booking.URL, p prefs.Preferences) Composed {
	var b strings.Builder
	for i, f := range Fields(u, p) {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(FormEscape(f.Key))
		b.WriteByte('=')
		b.WriteString(FormEscape(f.Value))
	}
	return Composed(b.String())
}

// Target returns the path the navigator should open, e.g. "/discount?url=...".
func Target(route string, q Composed) string {
	route = strings.Trim(route, "/")
	if route == "" {
		route = DefaultRoute
	}
	return "/" + route + "?" + q.String()
}

// Absolute prefixes target with a site base such as "https://example.org".
// An empty base returns target unchanged.
func Absolute(base, target string) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return target, nil
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: scheme and host required", base)
	}
	return strings.TrimRight(base, "/") + target, nil
}

const upperhex = "0123456789ABCDEF"

// FormEscape encodes s with the application/x-www-form-urlencoded byte
// serializer browsers use for URLSearchParams: alphanumerics and "*-._" are
// kept, space becomes '+', every other byte is percent-encoded.
func FormEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3 / 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '*', c == '-', c == '.', c == '_':
			b.WriteByte(c)
		case c == ' ':
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}
