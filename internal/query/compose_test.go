package query

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/prefs"
)

func TestCompose_FullPreferences(t *testing.T) {
	age := 34
	p := prefs.Preferences{
		BahnCard:             prefs.BahnCard50,
		HasDeutschlandTicket: true,
		PassengerAge:         &age,
		TravelClass:          prefs.FirstClass,
	}

	got := Compose("https://www.bahn.de/buchung/start", p)

	want := "url=https%3A%2F%2Fwww.bahn.de%2Fbuchung%2Fstart&bahnCard=50&hasDeutschlandTicket=true&passengerAge=34&travelClass=1"
	assert.Equal(t, want, got.String())
	assert.Contains(t, got.String(), "bahnCard=50&hasDeutschlandTicket=true&passengerAge=34&travelClass=1")
}

func TestCompose_Defaults(t *testing.T) {
	got := Compose("https://www.bahn.de/buchung/start", prefs.Defaults())
	assert.Equal(t,
		"url=https%3A%2F%2Fwww.bahn.de%2Fbuchung%2Fstart&bahnCard=none&hasDeutschlandTicket=false&passengerAge=&travelClass=2",
		got.String())
}

func TestCompose_Deterministic(t *testing.T) {
	age := 27
	p := prefs.Preferences{BahnCard: prefs.BahnCard25, PassengerAge: &age, TravelClass: prefs.SecondClass}
	u := booking.URL("https://www.bahn.de/buchung/start?so=K%C3%B6ln&zo=Berlin")

	first := Compose(u, p)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Compose(u, p))
	}
}

func TestCompose_FieldOrder(t *testing.T) {
	got := Compose("https://www.bahn.de/buchung/start", prefs.Defaults()).String()

	var keys []string
	for _, pair := range strings.Split(got, "&") {
		k, _, _ := strings.Cut(pair, "=")
		keys = append(keys, k)
	}
	assert.Equal(t, []string{ParamURL, ParamBahnCard, ParamHasDeutschlandTicket, ParamPassengerAge, ParamTravelClass}, keys)
}

func TestCompose_PreservesBookingQuery(t *testing.T) {
	u := booking.URL("https://www.bahn.de/buchung/start?vbid=a1&so=Berlin Hbf&zo=M%C3%BCnchen")
	got := Compose(u, prefs.Defaults())

	values, err := url.ParseQuery(got.String())
	require.NoError(t, err)
	assert.Equal(t, u.String(), values.Get(ParamURL))
}

func TestCompose_UnvalidatedValuesPassThrough(t *testing.T) {
	age := 500
	p := prefs.Preferences{BahnCard: "gold", PassengerAge: &age, TravelClass: "3"}
	got := Compose("https://www.bahn.de/buchung/start", p).String()

	assert.Contains(t, got, "bahnCard=gold")
	assert.Contains(t, got, "passengerAge=500")
	assert.Contains(t, got, "travelClass=3")
}

func TestFormEscape(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abcXYZ019", "abcXYZ019"},
		{"*-._", "*-._"},
		{"a b", "a+b"},
		{"~", "%7E"},
		{"a+b", "a%2Bb"},
		{"a&b=c", "a%26b%3Dc"},
		{"ü", "%C3%BC"},
		{"%20", "%2520"},
		{"/?#", "%2F%3F%23"},
	}
	for _, tt := range tests {
		if got := FormEscape(tt.input); got != tt.expected {
			t.Errorf("FormEscape(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTarget(t *testing.T) {
	q := Composed("url=x")
	assert.Equal(t, "/discount?url=x", Target("", q))
	assert.Equal(t, "/discount?url=x", Target("/discount/", q))
	assert.Equal(t, "/split/search?url=x", Target("split/search", q))
}

func TestAbsolute(t *testing.T) {
	got, err := Absolute("", "/discount?url=x")
	require.NoError(t, err)
	assert.Equal(t, "/discount?url=x", got)

	got, err = Absolute("https://splitfare.example/", "/discount?url=x")
	require.NoError(t, err)
	assert.Equal(t, "https://splitfare.example/discount?url=x", got)

	_, err = Absolute("splitfare.example", "/discount")
	assert.Error(t, err)

	_, err = Absolute("http://[::1", "/discount")
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	fields := Fields("https://www.bahn.de/buchung/start", prefs.Defaults())
	require.Len(t, fields, 5)
	assert.Equal(t, Field{ParamHasDeutschlandTicket, "false"}, fields[2])
	assert.Equal(t, Field{ParamPassengerAge, ""}, fields[3])
}
