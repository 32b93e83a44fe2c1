package cmd

import (
	"github.com/abhisek/formiz/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "formiz",
	Short: "Dynamic forms in your terminal",
	Long:  "Formiz — pick a form type, fill in its fields with live validation, and watch the completion bar climb.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
