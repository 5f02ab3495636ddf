package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSelect_Cycle(t *testing.T) {
	s := NewSelect([]string{"a", "b", "c"}, 1)

	steps := []struct {
		move func()
		want int
	}{
		{s.Next, 2},
		{s.Next, 0},
		{s.Prev, 2},
		{s.Prev, 1},
	}
	for i, step := range steps {
		step.move()
		if s.Index != step.want {
			t.Fatalf("step %d: Index = %d, want %d", i, s.Index, step.want)
		}
	}
}

func TestSelect_SetIndexIgnoresOutOfRange(t *testing.T) {
	s := NewSelect([]string{"a", "b"}, 5)
	if s.Index != 0 {
		t.Fatalf("NewSelect with bad index: Index = %d, want 0", s.Index)
	}
	s.SetIndex(1)
	s.SetIndex(-1)
	if s.Index != 1 {
		t.Fatalf("Index = %d, want 1", s.Index)
	}
}

func TestSelect_Empty(t *testing.T) {
	var s Select
	s.Next()
	s.Prev()
	if got := s.View(true, lipgloss.NewStyle(), lipgloss.NewStyle()); got != "" {
		t.Fatalf("View() of empty select = %q", got)
	}
}

func TestSelect_View(t *testing.T) {
	s := NewSelect([]string{"Erste Klasse", "Zweite Klasse"}, 1)
	plain := lipgloss.NewStyle()

	unfocused := s.View(false, plain, plain)
	if unfocused != "Zweite Klasse" {
		t.Errorf("unfocused View() = %q, want only the chosen label", unfocused)
	}

	focused := s.View(true, plain, plain)
	for _, label := range s.Labels {
		if !strings.Contains(focused, label) {
			t.Errorf("focused View() = %q, missing %q", focused, label)
		}
	}
}
