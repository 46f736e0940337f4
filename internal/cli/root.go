package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var rootCmd = &cobra.Command{
	Use:          "webike",
	Short:        "Bicycle manager",
	Long:         "Web client for managing bicycle records over a REST backend, plus a reference backend",
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

type runner interface {
	Run() error
	Stop(ctx context.Context) error
}

// runUntilSignal serves until SIGINT/SIGTERM or a server error, then stops
// the application with a bounded timeout.
func runUntilSignal(application runner) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Run()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-stop:
	case runErr = <-errCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := application.Stop(shutdownCtx); err != nil {
		return err
	}
	return runErr
}
