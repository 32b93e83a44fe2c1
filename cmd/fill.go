package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/formiz/internal/app"
	"github.com/abhisek/formiz/internal/forms"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Start filling a form",
	Long: `Open the form screen directly. With --type the field set is preselected;
without it the screen starts on the empty type selector.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		typeVal, _ := cmd.Flags().GetString("type")

		opts := app.Options{}
		if typeVal != "" {
			t := forms.ParseType(typeVal)
			if t == forms.TypeNone {
				known := make([]string, 0, len(forms.AllTypes()))
				for _, ft := range forms.AllTypes() {
					known = append(known, string(ft))
				}
				return fmt.Errorf("unknown form type %q: must be one of %s",
					typeVal, strings.Join(known, ", "))
			}
			opts.InitialType = t
		}

		return app.Run(opts)
	},
}

func init() {
	fillCmd.Flags().String("type", "", "Form type to preselect (e.g. userInformation)")
}
