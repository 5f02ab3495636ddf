package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/splitfare/splitfare/internal/tui/colors"
)

const (
	logoText     = "splitfare"
	subtitleText = "Split-Ticket-Preise für deine DB-Verbindung"
	ctaLabel     = "Bessere Verbindung suchen"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var rows []string
	rows = append(rows,
		GradientText(logoText, colors.LogoStart, colors.LogoEnd),
		SubtitleStyle.Render(subtitleText),
	)

	textStyle := FieldStyle
	if m.focused == fieldText {
		textStyle = FocusedFieldStyle
	}
	rows = append(rows, textStyle.Render(m.text.View()), "")

	rows = append(rows,
		m.row(fieldBahnCard, "BahnCard", m.bahnCard.View(m.focused == fieldBahnCard, ActiveOptionStyle, OptionStyle)),
		m.row(fieldAge, "Alter des Reisenden", m.age.View()),
	)
	if m.ageErr != "" {
		rows = append(rows, lipgloss.NewStyle().MarginLeft(LabelWidth).Render(ErrorStyle.Render(m.ageErr)))
	}
	rows = append(rows,
		m.row(fieldTicket, "Deutschlandticket", m.ticket.View(m.focused == fieldTicket, ActiveOptionStyle, OptionStyle)),
		m.row(fieldClass, "Reiseklasse", m.class.View(m.focused == fieldClass, ActiveOptionStyle, OptionStyle)),
		"",
		m.callToAction(),
	)

	if err := m.session.Controller.Err(); err != nil {
		rows = append(rows, "", ErrorStyle.Width(InputWidth).Render(err.Message))
	}
	if m.notice != "" {
		rows = append(rows, "", HintStyle.Width(InputWidth).Render(m.notice))
	}

	rows = append(rows, "", m.help.View(m.keys))

	form := FormStyle.Width(FormWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, form)
	}
	return form
}

func (m Model) row(f field, label, content string) string {
	style := LabelStyle
	if m.focused == f {
		style = FocusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), content)
}

// callToAction renders the search button. It is a link to the target once the
// text holds a booking URL, a plain button while there is text, and disabled
// otherwise.
func (m Model) callToAction() string {
	label := ctaLabel
	if m.focused == fieldSubmit {
		label = "▸ " + label
	}

	target, ok := m.session.Preview()
	switch {
	case ok:
		return lipgloss.JoinVertical(lipgloss.Left,
			ButtonReadyStyle.Render(label),
			TargetStyle.Width(InputWidth).Render(target),
		)
	case strings.TrimSpace(m.session.Text) != "":
		return ButtonStyle.Render(label)
	default:
		return ButtonDisabledStyle.Render(label)
	}
}
