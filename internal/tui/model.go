package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/splitfare/splitfare/internal/clipboard"
	"github.com/splitfare/splitfare/internal/prefs"
	"github.com/splitfare/splitfare/internal/session"
	"github.com/splitfare/splitfare/internal/tui/components"
)

type field int // Form fields in focus order

const (
	fieldText field = iota
	fieldBahnCard
	fieldAge
	fieldTicket
	fieldClass
	fieldSubmit
	fieldCount
)

// Deutschlandticket options in form order
var ticketOptions = []bool{true, false}

func ticketLabel(has bool) string {
	if has {
		return "Deutschlandticket"
	}
	return "Kein Deutschlandticket"
}

// clipboardMsg carries clipboard text into the form. Auto messages come from
// the startup check and never overwrite typed text.
type clipboardMsg struct {
	text string
	auto bool
	err  error
}

// Model is the bubbletea model of the search form
type Model struct {
	session *session.Session

	text     textarea.Model
	age      textinput.Model
	bahnCard components.Select
	ticket   components.Select
	class    components.Select
	focused  field

	ageErr string
	notice string

	help help.Model
	keys KeyMap

	width  int
	height int

	pasteOnStart bool
	target       string
	link         string
	quitting     bool
}

// Option configures a Model
type Option func(*Model)

// WithText prefills the text area.
func WithText(text string) Option {
	return func(m *Model) {
		m.text.SetValue(text)
		m.session.SetText(m.text.Value())
	}
}

// WithClipboardOnStart fills an empty text area with a booking link found on
// the clipboard when the program starts.
func WithClipboardOnStart(enabled bool) Option {
	return func(m *Model) { m.pasteOnStart = enabled }
}

// New builds the form for s, showing the preferences currently in its store
func New(s *session.Session, opts ...Option) Model {
	text := textarea.New()
	text.Placeholder = "Paste a DB booking link or a message containing one"
	text.ShowLineNumbers = false
	text.CharLimit = 0
	text.SetWidth(InputWidth)
	text.SetHeight(TextHeight)
	text.KeyMap.InsertNewline = Keys.Newline

	age := textinput.New()
	age.Placeholder = "Alter des Reisenden"
	age.Prompt = ""
	age.CharLimit = 3
	age.Width = 20

	p := s.Prefs.Current()
	age.SetValue(p.AgeString())

	m := Model{
		session:  s,
		text:     text,
		age:      age,
		bahnCard: components.NewSelect(bahnCardLabels(), indexOf(prefs.BahnCardOptions(), p.BahnCard)),
		ticket:   components.NewSelect([]string{ticketLabel(true), ticketLabel(false)}, indexOf(ticketOptions, p.HasDeutschlandTicket)),
		class:    components.NewSelect(travelClassLabels(), indexOf(prefs.TravelClassOptions(), p.TravelClass)),
		help:     help.New(),
		keys:     Keys,
	}
	m.focus(fieldText)

	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.pasteOnStart && m.session.Text == "" {
		cmds = append(cmds, detectBookingURL(m.session))
	}
	return tea.Batch(cmds...)
}

// Target returns the composed target of a successful submission.
func (m Model) Target() string { return m.target }

// Link returns Target prefixed with the configured base URL.
func (m Model) Link() string { return m.link }

// Submitted reports whether the form was left through a successful submission.
func (m Model) Submitted() bool { return m.target != "" }

func (m *Model) focus(f field) tea.Cmd {
	m.text.Blur()
	m.age.Blur()
	m.focused = f

	switch f {
	case fieldText:
		return m.text.Focus()
	case fieldAge:
		return m.age.Focus()
	}
	return nil
}

func readClipboard() tea.Msg {
	text, err := clipboard.ReadText()
	return clipboardMsg{text: text, err: err}
}

func detectBookingURL(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		u, ok := clipboard.ReadBookingURL(s.Extractor)
		if !ok {
			return nil
		}
		return clipboardMsg{text: string(u), auto: true}
	}
}

func bahnCardLabels() []string {
	var labels []string
	for _, b := range prefs.BahnCardOptions() {
		labels = append(labels, b.Label())
	}
	return labels
}

func travelClassLabels() []string {
	var labels []string
	for _, c := range prefs.TravelClassOptions() {
		labels = append(labels, c.Label())
	}
	return labels
}

func indexOf[T comparable](options []T, v T) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return 0
}
