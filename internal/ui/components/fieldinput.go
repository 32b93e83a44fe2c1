package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/formiz/internal/forms"
)

// FieldInput wraps bubbles/textinput with behavior derived from a field's
// kind: number fields accept digits only, date fields accept digits and
// separators, password fields mask their echo.
type FieldInput struct {
	Model textinput.Model
	Kind  forms.FieldKind
}

// NewFieldInput creates a styled input for one form field.
func NewFieldInput(desc forms.FieldDescriptor, width int) FieldInput {
	ti := textinput.New()
	ti.Placeholder = placeholderFor(desc.Kind)
	if width > 0 {
		ti.CharLimit = width
	}

	if desc.Kind == forms.KindPassword {
		ti.EchoMode = textinput.EchoPassword
	}

	return FieldInput{
		Model: ti,
		Kind:  desc.Kind,
	}
}

func placeholderFor(kind forms.FieldKind) string {
	switch kind {
	case forms.KindNumber:
		return "digits only"
	case forms.KindDate:
		return "YYYY-MM-DD"
	default:
		return ""
	}
}

// Init returns the initial command.
func (f FieldInput) Init() tea.Cmd {
	return f.Model.Focus()
}

// Update handles messages, filtering keystrokes the field kind rejects.
func (f FieldInput) Update(msg tea.Msg) (FieldInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !f.accepts(key[0]) {
			return f, nil
		}
	}

	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// accepts reports whether a printable key is valid for this field kind.
func (f FieldInput) accepts(ch byte) bool {
	switch f.Kind {
	case forms.KindNumber:
		return ch >= '0' && ch <= '9'
	case forms.KindDate:
		return (ch >= '0' && ch <= '9') || ch == '-' || ch == '/'
	default:
		return true
	}
}

// View renders the input.
func (f FieldInput) View() string {
	return f.Model.View()
}

// Value returns the current input value.
func (f FieldInput) Value() string {
	return f.Model.Value()
}

// Focus gives the input keyboard focus.
func (f *FieldInput) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *FieldInput) Blur() {
	f.Model.Blur()
}
