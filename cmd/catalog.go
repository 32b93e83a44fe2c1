package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/formiz/internal/forms"
	"github.com/abhisek/formiz/internal/ui/theme"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the form catalog",
	Long:  "List every form type with its fields, kinds, and required markers.",
	Run: func(cmd *cobra.Command, args []string) {
		typeStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		kindStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		reqStyle := lipgloss.NewStyle().Foreground(theme.Accent)

		for _, t := range forms.AllTypes() {
			fmt.Printf("%s  %s\n",
				typeStyle.Render(t.DisplayName()),
				kindStyle.Render(fmt.Sprintf("(%s)", t)))

			for _, f := range forms.FieldSet(t) {
				req := " "
				if f.Required {
					req = reqStyle.Render("*")
				}
				fmt.Printf("  %s %-18s %s\n", req, f.Label, kindStyle.Render(string(f.Kind)))
				if len(f.Options) > 0 {
					fmt.Printf("      %s\n", kindStyle.Render(strings.Join(f.Options, ", ")))
				}
			}
			fmt.Println()
		}
	},
}
