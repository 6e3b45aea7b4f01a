package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/protonsvc/rasa-nlg/internal/audit"
	"github.com/protonsvc/rasa-nlg/internal/config"
	"github.com/protonsvc/rasa-nlg/internal/db"
	"github.com/protonsvc/rasa-nlg/internal/progress"
	"github.com/protonsvc/rasa-nlg/internal/responses"
)

var importBotID string

var importCmd = &cobra.Command{
	Use:   "import <domain-file>",
	Short: "Bulk import responses from a Rasa domain file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading domain file: %w", err)
		}
		doc, err := responses.ParseDocument(data)
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		respStore := responses.NewStore(database)
		auditStore := audit.NewStore(database)

		reporter := progress.NewReporter()
		reporter.Start(doc.Len())
		current := 0
		count, err := respStore.Load(cmd.Context(), importBotID, doc, func(respID string) {
			current++
			reporter.Update(current, respID)
		})
		reporter.Finish()
		if err != nil {
			return err
		}

		if _, err := auditStore.Record(cmd.Context(), audit.Record{
			BotID:     importBotID,
			Source:    audit.SourceCLI,
			ItemCount: count,
		}); err != nil {
			return err
		}

		fmt.Printf("Imported %d responses for bot '%s'\n", count, importBotID)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importBotID, "bot", "", "Bot identifier to import into")
	importCmd.MarkFlagRequired("bot")
	rootCmd.AddCommand(importCmd)
}
