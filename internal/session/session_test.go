package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splitfare/splitfare/internal/config"
	"github.com/splitfare/splitfare/internal/form"
	"github.com/splitfare/splitfare/internal/prefs"
)

func TestNew_Defaults(t *testing.T) {
	s := New(nil, nil)

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Empty(t, s.Text)
	assert.Equal(t, prefs.Defaults(), s.Prefs.Current())
	assert.Equal(t, "bahn.de", s.Extractor.Pattern().Host)
	assert.Equal(t, form.Idle, s.Controller.State())
}

func TestNew_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, New(nil, nil).ID, New(nil, nil).ID)
}

func TestSession_SubmitFlow(t *testing.T) {
	var navigated []string
	s := New(nil, form.NavigatorFunc(func(target string) { navigated = append(navigated, target) }))

	s.SetText("   ")
	assert.False(t, s.Ready())
	out := s.Submit()
	require.NotNil(t, out.Err)
	assert.Equal(t, form.EmptyInput, out.Err.Kind)

	s.SetText("Hier: https://www.bahn.de/buchung/start?vbid=42.")
	s.Update(prefs.WithBahnCard(prefs.BahnCard25))
	assert.True(t, s.Ready())

	preview, ok := s.Preview()
	require.True(t, ok)

	out = s.Submit()
	require.True(t, out.Navigated())
	assert.Equal(t, preview, out.Target)
	assert.Equal(t, []string{out.Target}, navigated)
	assert.Contains(t, out.Target, "bahnCard=25")
	assert.Contains(t, out.Target, "vbid%3D42&")
}

func TestSession_CustomSettings(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Booking.Host = "example.org"
	settings.Booking.PathPrefix = "/booking"
	settings.Booking.Route = "split"
	settings.Booking.BaseURL = "https://splitfare.example"

	s := New(settings, nil)
	s.SetText("https://www.example.org/booking/1")

	out := s.Submit()
	require.True(t, out.Navigated())
	assert.Regexp(t, `^/split\?url=https%3A%2F%2Fwww.example.org%2Fbooking%2F1&`, out.Target)

	link, err := s.Link(out.Target)
	require.NoError(t, err)
	assert.Equal(t, "https://splitfare.example"+out.Target, link)

	s.SetText("https://www.bahn.de/buchung/start")
	out = s.Submit()
	require.NotNil(t, out.Err)
	assert.Contains(t, out.Err.Message, "from example.org with /booking path")
}

func TestSession_Reset(t *testing.T) {
	s := New(nil, nil)
	s.SetText("kein link")
	s.Update(prefs.WithTravelClass(prefs.FirstClass))
	s.Submit()
	require.Equal(t, form.ErrorDisplayed, s.Controller.State())

	s.Reset()
	assert.Empty(t, s.Text)
	assert.Equal(t, prefs.Defaults(), s.Prefs.Current())
	assert.Equal(t, form.Idle, s.Controller.State())
}
