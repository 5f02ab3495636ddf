package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/splitfare/splitfare/internal/prefs"
	"github.com/splitfare/splitfare/internal/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		if msg.auto && m.session.Text != "" {
			return m, nil
		}
		m.notice = ""
		m.text.SetValue(msg.text)
		m.session.SetText(m.text.Value())
		utils.Debug("Filled form from clipboard (auto=%v)", msg.auto)
		return m, m.focus(fieldText)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Paste):
			return m, readClipboard

		case key.Matches(msg, m.keys.Reset):
			return m, m.reset()

		case key.Matches(msg, m.keys.Dismiss):
			m.session.Controller.Dismiss()
			m.notice = ""
			return m, nil

		case key.Matches(msg, m.keys.Submit):
			return m.submit()

		case key.Matches(msg, m.keys.Next):
			if msg.String() == "down" && m.focused == fieldText && m.text.Line() < m.text.LineCount()-1 {
				break
			}
			return m, m.focus((m.focused + 1) % fieldCount)

		case key.Matches(msg, m.keys.Prev):
			if msg.String() == "up" && m.focused == fieldText && m.text.Line() > 0 {
				break
			}
			return m, m.focus((m.focused + fieldCount - 1) % fieldCount)

		case key.Matches(msg, m.keys.Left) && m.cycle(-1):
			return m, nil

		case key.Matches(msg, m.keys.Right) && m.cycle(1):
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focused {
	case fieldText:
		m.text, cmd = m.text.Update(msg)
		m.session.SetText(m.text.Value())
	case fieldAge:
		m.age, cmd = m.age.Update(msg)
		m.syncAge()
	}
	return m, cmd
}

// cycle moves the focused select by dir and stores the choice. It reports
// false when no select has focus.
func (m *Model) cycle(dir int) bool {
	var s interface {
		Next()
		Prev()
	}
	switch m.focused {
	case fieldBahnCard:
		s = &m.bahnCard
	case fieldTicket:
		s = &m.ticket
	case fieldClass:
		s = &m.class
	default:
		return false
	}

	if dir < 0 {
		s.Prev()
	} else {
		s.Next()
	}

	switch m.focused {
	case fieldBahnCard:
		m.session.Update(prefs.WithBahnCard(prefs.BahnCardOptions()[m.bahnCard.Index]))
	case fieldTicket:
		m.session.Update(prefs.WithDeutschlandTicket(ticketOptions[m.ticket.Index]))
	case fieldClass:
		m.session.Update(prefs.WithTravelClass(prefs.TravelClassOptions()[m.class.Index]))
	}
	return true
}

// syncAge stores the age field. Values that do not parse or fall outside the
// form bounds stay in the field with an error and block submission.
func (m *Model) syncAge() {
	age, err := prefs.ParseAge(m.age.Value())
	if err != nil || (age != nil && (*age < 0 || *age > prefs.MaxAge)) {
		m.ageErr = fmt.Sprintf("Age must be a number between 0 and %d", prefs.MaxAge)
		return
	}
	m.ageErr = ""
	if age == nil {
		m.session.Update(prefs.WithoutAge())
		return
	}
	m.session.Update(prefs.WithAge(*age))
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.ageErr != "" {
		return m, m.focus(fieldAge)
	}
	if err := prefs.Validate(m.session.Prefs.Current()); err != nil {
		m.notice = err.Error()
		return m, nil
	}

	out := m.session.Submit()
	if !out.Navigated() {
		return m, m.focus(fieldText)
	}

	link, err := m.session.Link(out.Target)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.target = out.Target
	m.link = link
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) reset() tea.Cmd {
	m.session.Reset()
	p := m.session.Prefs.Current()

	m.text.Reset()
	m.age.SetValue(p.AgeString())
	m.bahnCard.SetIndex(indexOf(prefs.BahnCardOptions(), p.BahnCard))
	m.ticket.SetIndex(indexOf(ticketOptions, p.HasDeutschlandTicket))
	m.class.SetIndex(indexOf(prefs.TravelClassOptions(), p.TravelClass))
	m.ageErr = ""
	m.notice = ""
	return m.focus(fieldText)
}
