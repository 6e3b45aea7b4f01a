package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/protonsvc/rasa-nlg/internal/audit"
	"github.com/protonsvc/rasa-nlg/internal/bots"
	"github.com/protonsvc/rasa-nlg/internal/config"
	"github.com/protonsvc/rasa-nlg/internal/db"
	"github.com/protonsvc/rasa-nlg/internal/nlg"
	"github.com/protonsvc/rasa-nlg/internal/responses"
	"github.com/protonsvc/rasa-nlg/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the NLG server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		database, err := db.Open(cfg.DBPath())
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:          cfg.Port,
			AssetsDir:     cfg.AssetsDir,
			AssetPatterns: cfg.AssetPatterns,
			AllowAll:      cfg.AllowAll,
		}, database)

		registerAllRoutes(srv, database)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "rasa-nlg %s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", database.Path())
		fmt.Fprintf(os.Stderr, "  Assets:   %s\n", cfg.AssetsDir)

		return srv.Start()
	},
}

// registerAllRoutes wires the feature routes onto the server router.
func registerAllRoutes(srv *server.Server, database *db.DB) {
	r := srv.Router()

	botStore := bots.NewStore(database)
	respStore := responses.NewStore(database)
	auditStore := audit.NewStore(database)

	nlg.RegisterRoutes(r, respStore, nlg.NewSelector(nil))
	bots.RegisterRoutes(r, botStore, respStore, auditStore)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
