package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/formiz/internal/ui/theme"
)

// Select is a single-choice selector cycled with the left/right keys.
// With a non-empty placeholder the component starts on the placeholder,
// one step left of the first option.
type Select struct {
	Placeholder string
	Options     []string
	Index       int // -1 means the placeholder is selected
	Focused     bool
}

// NewSelect creates a selector. It starts on the placeholder when one is
// given, otherwise on the first option.
func NewSelect(placeholder string, options []string) Select {
	idx := 0
	if placeholder != "" {
		idx = -1
	}
	return Select{
		Placeholder: placeholder,
		Options:     options,
		Index:       idx,
	}
}

// Init returns nil (no initial command).
func (s Select) Init() tea.Cmd {
	return nil
}

// Update handles left/right cycling while focused.
func (s Select) Update(msg tea.Msg) (Select, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	min := 0
	if s.Placeholder != "" {
		min = -1
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Index > min {
			s.Index--
		}
	case "right", "l", "space":
		if s.Index < len(s.Options)-1 {
			s.Index++
		}
	}

	return s, nil
}

// Value returns the selected option, or "" while on the placeholder.
func (s Select) Value() string {
	if s.Index < 0 || s.Index >= len(s.Options) {
		return ""
	}
	return s.Options[s.Index]
}

// View renders the selector as "◂ value ▸".
func (s Select) View() string {
	label := s.Placeholder
	style := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if s.Index >= 0 && s.Index < len(s.Options) {
		label = s.Options[s.Index]
		style = lipgloss.NewStyle().Foreground(theme.Text)
	}

	arrows := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		arrows = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		if s.Index >= 0 {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
	}

	return arrows.Render("◂ ") + style.Render(label) + arrows.Render(" ▸")
}
