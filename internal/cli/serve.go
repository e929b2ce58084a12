package cli

import (
	"github.com/spf13/cobra"

	"slotmatch/internal/app"
	"slotmatch/internal/config"
)

func NewServeCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Environment)
			defer logger.Sync()

			return app.Run(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
	return cmd
}
