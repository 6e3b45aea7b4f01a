package cmd

import (
	"github.com/spf13/cobra"

	"github.com/protonsvc/rasa-nlg/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a .rasa-nlg.yml configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
