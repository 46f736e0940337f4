package cli

import (
	"context"
	"fmt"

	apiapp "github.com/sm8ta/webike_bicycle_manager/internal/app/api"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
	"github.com/spf13/cobra"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Run the reference bicycles REST backend",
	Long:  "Serves /bicycles on API_PORT backed by PostgreSQL, or by memory when DB_HOST is unset",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		application, err := apiapp.New(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("failed to create app: %w", err)
		}

		return runUntilSignal(application)
	},
}

func init() {
	rootCmd.AddCommand(apiCmd)
}
