package commands

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fecstream/internal/config"
	"fecstream/internal/logging"
)

var cfg *config.Config

func Execute() error {
	root := &cobra.Command{
		Use:           "fecstream",
		Short:         "Streaming decoder for FEC electronic filings",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if it exists (Overload overwrites existing env vars)
			if err := godotenv.Overload(); err == nil {
				slog.Info("loaded .env file (overwriting existing env vars)")
			}

			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			return nil
		},
	}

	root.AddCommand(infoCmd(), decodeCmd())
	return root.Execute()
}
