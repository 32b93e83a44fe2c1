package form

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/formiz/internal/forms"
	"github.com/abhisek/formiz/internal/screen"
	"github.com/abhisek/formiz/internal/ui/components"
	"github.com/abhisek/formiz/internal/ui/layout"
)

const fieldInputWidth = 40

// fieldWidget pairs a field descriptor with its input widget. Dropdown
// fields use sel; every other kind uses input.
type fieldWidget struct {
	desc  forms.FieldDescriptor
	input components.FieldInput
	sel   components.Select
}

// FormScreen renders the dynamic form: a type selector, the active field
// set, a submit button, a completion bar, and the submission status line.
// All form semantics live in the controller; the screen translates key
// events into controller operations and re-renders from its state.
type FormScreen struct {
	ctrl    *forms.Controller
	typeSel components.Select
	widgets []fieldWidget
	focus   int // 0 = type selector, 1..n = fields, n+1 = submit
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.ProgressProvider = (*FormScreen)(nil)

// New creates a FormScreen. A known initial type starts the form in the
// editing state; TypeNone starts on the empty selector.
func New(initial forms.FormType) *FormScreen {
	labels := make([]string, 0, len(forms.AllTypes()))
	for _, t := range forms.AllTypes() {
		labels = append(labels, t.DisplayName())
	}

	s := &FormScreen{
		ctrl:    forms.NewController(),
		typeSel: components.NewSelect("(select a form type)", labels),
	}
	s.typeSel.Focused = true

	if forms.IsKnown(initial) {
		for i, t := range forms.AllTypes() {
			if t == initial {
				s.typeSel.Index = i
				break
			}
		}
		s.ctrl.SelectFormType(initial)
		s.rebuildWidgets()
	}

	return s
}

func (s *FormScreen) Init() tea.Cmd {
	return s.applyFocus()
}

func (s *FormScreen) Title() string {
	if t := s.ctrl.FormType(); t != forms.TypeNone {
		return t.DisplayName()
	}
	return "Fill a Form"
}

// Progress feeds the header readout; negative means no active form.
func (s *FormScreen) Progress() float64 {
	if s.ctrl.FormType() == forms.TypeNone {
		return -1
	}
	return s.ctrl.Progress()
}

func (s *FormScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Choose"},
		{Key: "↑↓/Tab", Description: "Move"},
	}
	if len(s.widgets) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next / Submit"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Esc", Description: "Back"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (s *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		case "enter":
			if s.focus == s.submitIndex() && s.focus > 0 {
				s.submit()
				return s, nil
			}
			return s, s.moveFocus(1)
		}
	}

	// Forward everything else to the focused widget.
	switch {
	case s.focus == 0:
		before := s.typeSel.Index
		var cmd tea.Cmd
		s.typeSel, cmd = s.typeSel.Update(msg)
		if s.typeSel.Index != before {
			s.selectType(s.typeSel.Index)
		}
		return s, cmd

	case s.focus >= 1 && s.focus <= len(s.widgets):
		w := &s.widgets[s.focus-1]
		var cmd tea.Cmd
		if w.desc.Kind == forms.KindDropdown {
			before := w.sel.Value()
			w.sel, cmd = w.sel.Update(msg)
			if w.sel.Value() != before {
				s.ctrl.SetFieldValue(w.desc.Name, w.sel.Value())
			}
		} else {
			before := w.input.Value()
			w.input, cmd = w.input.Update(msg)
			if w.input.Value() != before {
				s.ctrl.SetFieldValue(w.desc.Name, w.input.Value())
			}
		}
		return s, cmd
	}

	return s, nil
}

// selectType maps a selector index to a form type and rebuilds the field
// widgets. Index -1 is the placeholder, which clears the selection.
func (s *FormScreen) selectType(idx int) {
	types := forms.AllTypes()
	if idx >= 0 && idx < len(types) {
		s.ctrl.SelectFormType(types[idx])
	} else {
		s.ctrl.SelectFormType(forms.TypeNone)
	}
	s.rebuildWidgets()
}

// submit runs the controller submission. On success the field widgets are
// rebuilt empty to mirror the cleared values; on failure they keep their
// entries so only the missing fields need attention.
func (s *FormScreen) submit() {
	if s.ctrl.Submit() {
		s.rebuildWidgets()
		s.focus = 0
		s.applyFocus()
	}
}

// rebuildWidgets recreates the field widgets from the active field set.
func (s *FormScreen) rebuildWidgets() {
	fields := s.ctrl.Fields()
	s.widgets = make([]fieldWidget, 0, len(fields))
	for _, f := range fields {
		w := fieldWidget{desc: f}
		if f.Kind == forms.KindDropdown {
			w.sel = components.NewSelect("(choose)", f.Options)
		} else {
			w.input = components.NewFieldInput(f, fieldInputWidth)
		}
		s.widgets = append(s.widgets, w)
	}
	if s.focus > s.submitIndex() {
		s.focus = 0
	}
}

// submitIndex returns the focus index of the submit button, or 0 when no
// field set is active and the button is absent.
func (s *FormScreen) submitIndex() int {
	if len(s.widgets) == 0 {
		return 0
	}
	return len(s.widgets) + 1
}

// moveFocus advances focus by delta, wrapping around the selector, the
// fields, and the submit button.
func (s *FormScreen) moveFocus(delta int) tea.Cmd {
	max := s.submitIndex()
	s.focus += delta
	if s.focus < 0 {
		s.focus = max
	}
	if s.focus > max {
		s.focus = 0
	}
	return s.applyFocus()
}

// applyFocus syncs widget focus state with the focus index.
func (s *FormScreen) applyFocus() tea.Cmd {
	var cmd tea.Cmd

	s.typeSel.Focused = s.focus == 0

	for i := range s.widgets {
		w := &s.widgets[i]
		focused := s.focus == i+1
		if w.desc.Kind == forms.KindDropdown {
			w.sel.Focused = focused
			continue
		}
		if focused {
			cmd = w.input.Focus()
		} else {
			w.input.Blur()
		}
	}

	return cmd
}
