package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/formiz/internal/forms"
	"github.com/abhisek/formiz/internal/screen"
	"github.com/abhisek/formiz/internal/ui/layout"
	"github.com/abhisek/formiz/internal/ui/theme"
)

// CatalogScreen is a read-only browser over the form type catalog: the
// left/right keys switch types, the field list below follows.
type CatalogScreen struct {
	types    []forms.FormType
	selected int
}

var _ screen.Screen = (*CatalogScreen)(nil)
var _ screen.KeyHintProvider = (*CatalogScreen)(nil)

// New creates a new CatalogScreen on the first form type.
func New() *CatalogScreen {
	return &CatalogScreen{
		types: forms.AllTypes(),
	}
}

func (c *CatalogScreen) Init() tea.Cmd {
	return nil
}

func (c *CatalogScreen) Title() string {
	return "Form Catalog"
}

func (c *CatalogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Switch type"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *CatalogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if c.selected > 0 {
			c.selected--
		}
	case "right", "l":
		if c.selected < len(c.types)-1 {
			c.selected++
		}
	}

	return c, nil
}

func (c *CatalogScreen) View(width, height int) string {
	var b strings.Builder

	// Type tabs.
	tabs := make([]string, 0, len(c.types))
	for i, t := range c.types {
		style := theme.Unselected
		if i == c.selected {
			style = theme.Selected
		}
		tabs = append(tabs, style.Render(t.DisplayName()))
	}
	b.WriteString("  " + strings.Join(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  │  ")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", maxInt(width-4, 10))))
	b.WriteString("\n\n")

	// Field listing for the selected type.
	active := c.types[c.selected]
	for _, f := range forms.FieldSet(active) {
		name := theme.Body.Render(f.Label)
		if f.Required {
			name += " " + theme.RequiredMark.Render("*")
		}
		kind := theme.Hint.Render(fmt.Sprintf("(%s)", f.Kind))
		b.WriteString("  " + name + "  " + kind + "\n")

		if len(f.Options) > 0 {
			b.WriteString("      " + theme.Hint.Render(strings.Join(f.Options, ", ")) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  * required field"))

	return "\n" + b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
