package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Select is a horizontal single-choice field
type Select struct {
	Labels []string
	Index  int
}

// NewSelect returns a select with the option at index chosen
func NewSelect(labels []string, index int) Select {
	s := Select{Labels: labels}
	s.SetIndex(index)
	return s
}

// SetIndex chooses an option, ignoring out-of-range indices
func (s *Select) SetIndex(i int) {
	if i >= 0 && i < len(s.Labels) {
		s.Index = i
	}
}

// Next chooses the following option, wrapping around
func (s *Select) Next() {
	if len(s.Labels) == 0 {
		return
	}
	s.Index = (s.Index + 1) % len(s.Labels)
}

// Prev chooses the preceding option, wrapping around
func (s *Select) Prev() {
	if len(s.Labels) == 0 {
		return
	}
	s.Index = (s.Index - 1 + len(s.Labels)) % len(s.Labels)
}

// View renders all options with the chosen one highlighted. Unfocused
// selects show only the chosen option.
func (s Select) View(focused bool, activeStyle, inactiveStyle lipgloss.Style) string {
	if len(s.Labels) == 0 {
		return ""
	}
	if !focused {
		return inactiveStyle.Render(s.Labels[s.Index])
	}

	rendered := make([]string, 0, len(s.Labels))
	for i, label := range s.Labels {
		style := inactiveStyle
		if i == s.Index {
			style = activeStyle
		}
		rendered = append(rendered, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
