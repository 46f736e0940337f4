package cli

import (
	"context"
	"fmt"

	"github.com/sm8ta/webike_bicycle_manager/internal/app"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bicycle manager web client",
	Long:  "Serves the bicycle manager page and talks to the backend at BACKEND_URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		application, err := app.New(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("failed to create app: %w", err)
		}

		return runUntilSignal(application)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
