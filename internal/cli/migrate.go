package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/postgres"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Manage the bicycles database schema",
	Long:      "Runs the embedded goose migrations against the database configured by DB_*",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if !cfg.DB.Enabled() {
			return errors.New("DB_HOST is not set")
		}

		db, err := postgres.Open(context.Background(), cfg.DB.DSN())
		if err != nil {
			return err
		}
		defer db.Close()

		if err := postgres.Migrate(db, command); err != nil {
			return err
		}
		cmd.Printf("migrate %s: done\n", command)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
