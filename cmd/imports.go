package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/protonsvc/rasa-nlg/internal/audit"
	"github.com/protonsvc/rasa-nlg/internal/config"
	"github.com/protonsvc/rasa-nlg/internal/db"
)

var (
	importsBotID string
	importsLimit int
)

var importsCmd = &cobra.Command{
	Use:   "imports",
	Short: "List recent bulk imports",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		records, err := audit.NewStore(database).List(cmd.Context(), importsBotID, importsLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No imports recorded.")
			return nil
		}

		for _, rec := range records {
			fmt.Printf("%s  %-8s  bot=%s  items=%d\n",
				rec.CreatedAt.Format(time.DateTime), rec.Source, rec.BotID, rec.ItemCount)
		}
		return nil
	},
}

func init() {
	importsCmd.Flags().StringVar(&importsBotID, "bot", "", "Only show imports for this bot")
	importsCmd.Flags().IntVar(&importsLimit, "limit", 20, "Maximum records to show")
	rootCmd.AddCommand(importsCmd)
}
