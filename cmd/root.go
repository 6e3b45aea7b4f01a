package cmd

import (
	"github.com/spf13/cobra"

	"github.com/protonsvc/rasa-nlg/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "rasa-nlg",
	Short: "NLG server for Rasa chatbots",
	Long: `rasa-nlg manages chatbot projects and their response templates, and
serves the Rasa NLG endpoint that picks one concrete reply variation
per request, honoring channel-specific content.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigPath, "config file path")
}
