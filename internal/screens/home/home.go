package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/formiz/internal/forms"
	"github.com/abhisek/formiz/internal/router"
	"github.com/abhisek/formiz/internal/screen"
	catalogscreen "github.com/abhisek/formiz/internal/screens/catalog"
	formscreen "github.com/abhisek/formiz/internal/screens/form"
	"github.com/abhisek/formiz/internal/ui/components"
	"github.com/abhisek/formiz/internal/ui/theme"
)

// HomeScreen is the entry menu of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New() *HomeScreen {
	items := []components.MenuItem{
		{Label: "FILL A FORM", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: formscreen.New(forms.TypeNone)}
			}
		}},
		{Label: "FORM CATALOG", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: catalogscreen.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("FORMIZ"))
	sections = append(sections, theme.Subtitle.Width(width).Render("dynamic forms in your terminal"))
	sections = append(sections, "")
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
