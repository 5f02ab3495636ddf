// Package form runs a search form submission: extraction, composition and
// hand-off to navigation.
package form

import (
	"strings"

	"go.uber.org/zap"

	"github.com/splitfare/splitfare/internal/booking"
	"github.com/splitfare/splitfare/internal/prefs"
	"github.com/splitfare/splitfare/internal/query"
)

// State of the controller between submissions.
type State int

const (
	Idle State = iota
	ErrorDisplayed
)

func (s State) String() string {
	if s == ErrorDisplayed {
		return "error"
	}
	return "idle"
}

// Navigator receives the composed target of a successful submission.
type Navigator interface {
	Navigate(target string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(target string)

func (f NavigatorFunc) Navigate(target string) { f(target) }

// Outcome is the result of Submit: either a target that was handed to the
// navigator or a validation error.
type Outcome struct {
	Target string
	Err    *ValidationError
}

// Navigated reports whether the submission succeeded.
func (o Outcome) Navigated() bool { return o.Err == nil }

// Controller orchestrates submissions for one session.
type Controller struct {
	extractor *booking.Extractor
	prefs     *prefs.Store
	navigator Navigator
	route     string
	logger    *zap.Logger

	state State
	err   *ValidationError
}

// Option configures a Controller.
type Option func(*Controller)

// WithRoute sets the downstream route. Default query.DefaultRoute.
func WithRoute(route string) Option {
	return func(c *Controller) { c.route = route }
}

// WithLogger sets the logger submissions are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController returns an idle controller. nav may be nil, in which case
// targets are only returned from Submit.
func NewController(ex *booking.Extractor, store *prefs.Store, nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		extractor: ex,
		prefs:     store,
		navigator: nav,
		route:     query.DefaultRoute,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit evaluates text from scratch. Empty or whitespace-only text yields
// EmptyInput, text without a qualifying link yields NoURLFound; otherwise the
// composed target is passed to the navigator and the controller returns to
// Idle. The target is not retained.
func (c *Controller) Submit(text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return c.fail(EmptyInput)
	}

	res := c.extractor.Find(text)
	if !res.Found() {
		c.logger.Debug("no booking url in submission",
			zap.Stringer("outcome", res.Outcome),
			zap.Int("candidates", len(res.Candidates)),
			zap.Any("rejected", res.Rejected),
		)
		return c.fail(NoURLFound)
	}

	target := c.compose(res.URL)
	c.state = Idle
	c.err = nil

	c.logger.Debug("navigating", zap.String("target", target))
	if c.navigator != nil {
		c.navigator.Navigate(target)
	}
	return Outcome{Target: target}
}

// Preview returns the target a submission of text would navigate to. It does
// not touch the controller state or call the navigator.
func (c *Controller) Preview(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	u, ok := c.extractor.Extract(text)
	if !ok {
		return "", false
	}
	return c.compose(u), true
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Err returns the error on display, or nil when Idle.
func (c *Controller) Err() *ValidationError {
	return c.err
}

// Dismiss clears a displayed error.
func (c *Controller) Dismiss() {
	c.state = Idle
	c.err = nil
}

func (c *Controller) compose(u booking.URL) string {
	return query.Target(c.route, query.Compose(u, c.prefs.Current()))
}

func (c *Controller) fail(kind ErrorKind) Outcome {
	c.err = NewValidationError(kind, c.extractor.Pattern())
	c.state = ErrorDisplayed
	c.logger.Debug("submission refused", zap.Stringer("kind", kind))
	return Outcome{Err: c.err}
}
