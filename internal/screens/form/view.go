package form

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/formiz/internal/forms"
	"github.com/abhisek/formiz/internal/ui/components"
	"github.com/abhisek/formiz/internal/ui/theme"
)

func (s *FormScreen) View(width, height int) string {
	var b strings.Builder

	// Type selector row.
	selLabel := theme.FieldLabel.Render("Form Type  ")
	if s.focus == 0 {
		selLabel = theme.FieldLabelFocused.Render("Form Type  ")
	}
	b.WriteString(selLabel + s.typeSel.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 10))))
	b.WriteString("\n\n")

	if len(s.widgets) == 0 {
		b.WriteString(theme.Hint.Render("  Choose a form type to begin."))
		return pad(b.String())
	}

	// Field rows.
	for i := range s.widgets {
		b.WriteString(s.renderField(i))
		b.WriteString("\n")
	}

	// Submit button.
	btn := components.NewButton("Submit", s.focus == s.submitIndex(), nil)
	b.WriteString("\n" + "  " + btn.View() + "\n\n")

	// Completion bar.
	bar := components.NewProgressBar("  Progress", s.ctrl.Progress()/100, true, min(width-6, 60))
	b.WriteString(bar.View())
	b.WriteString("\n")

	// Status line.
	if status := s.ctrl.Status(); status != "" {
		b.WriteString("\n")
		if s.ctrl.Succeeded() {
			b.WriteString("  " + theme.StatusOK.Render(status))
			if r := s.ctrl.Receipt(); r != "" {
				b.WriteString("\n  " + theme.Hint.Render("receipt "+r))
			}
		} else {
			b.WriteString("  " + theme.StatusBad.Render(status))
		}
		b.WriteString("\n")
	}

	return pad(b.String())
}

// renderField renders one field: label with required marker, the input
// widget, and the inline validation error when present.
func (s *FormScreen) renderField(i int) string {
	w := s.widgets[i]
	focused := s.focus == i+1

	label := w.desc.Label
	labelStyle := theme.FieldLabel
	if focused {
		labelStyle = theme.FieldLabelFocused
	}
	line := "  " + labelStyle.Render(label)
	if w.desc.Required {
		line += " " + theme.RequiredMark.Render("*")
	}
	line += "\n"

	if w.desc.Kind == forms.KindDropdown {
		line += "  " + w.sel.View() + "\n"
	} else {
		line += "  " + w.input.View() + "\n"
	}

	if errMsg := s.ctrl.Error(w.desc.Name); errMsg != "" {
		line += "  " + theme.FieldError.Render("✗ "+errMsg) + "\n"
	}

	return line
}

func pad(content string) string {
	return "\n" + content
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
