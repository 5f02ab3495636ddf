// Package session wires one user's form state: the raw text, the preference
// store and the controller that submits them.
package session

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/config"
	"github.com/splitfare/splitfare/internal/form"
	"github.com/splitfare/splitfare/internal/prefs"
	"github.com/splitfare/splitfare/internal/query"
)

// Session is owned by exactly one front end. Nothing in it is shared across
// sessions.
type Session struct {
	ID   string
	Text string

	Prefs      *prefs.Store
	Extractor  *booking.Extractor
	Controller *form.Controller

	baseURL string
	logger  *zap.Logger
}

// Option configures a Session.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger; entries carry the session ID.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New starts a session with default preferences. settings may be nil, in
// which case config.DefaultSettings is used.
func New(settings *config.Settings, nav form.Navigator, opts ...Option) *Session {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.New().String()
	logger := o.logger.With(zap.String("session", id))

	store := prefs.NewStore()
	ex := booking.NewExtractor(settings.Booking.Pattern())

	s := &Session{
		ID:        id,
		Prefs:     store,
		Extractor: ex,
		Controller: form.NewController(ex, store, nav,
			form.WithRoute(settings.Booking.Route),
			form.WithLogger(logger),
		),
		baseURL: settings.Booking.BaseURL,
		logger:  logger,
	}
	logger.Debug("session started", zap.String("host", ex.Pattern().Host), zap.String("path", ex.Pattern().PathPrefix))
	return s
}

// SetText replaces the raw input.
func (s *Session) SetText(text string) {
	s.Text = text
}

// Update applies a partial preference update.
func (s *Session) Update(u prefs.Partial) prefs.Preferences {
	return s.Prefs.Update(u)
}

// Ready reports whether the current text holds a booking link.
func (s *Session) Ready() bool {
	return s.Extractor.Valid(s.Text)
}

// Preview returns the target the current text would submit to.
func (s *Session) Preview() (string, bool) {
	return s.Controller.Preview(s.Text)
}

// Submit submits the current text.
func (s *Session) Submit() form.Outcome {
	return s.Controller.Submit(s.Text)
}

// Link turns a target path into the link shown to the user, prefixed with
// the configured base URL if there is one.
func (s *Session) Link(target string) (string, error) {
	return query.Absolute(s.baseURL, target)
}

// Reset restores the start-of-session state: empty text, default
// preferences, no error on display.
func (s *Session) Reset() {
	s.Text = ""
	s.Prefs.Reset()
	s.Controller.Dismiss()
}
