// Package cmd implements the govern CLI using cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// rootCmd starts the bot when no sub-command is given
var rootCmd = &cobra.Command{
	Use:           "govern",
	Short:         "govern community management bot",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBot,
}

// Execute runs the root command and exits on error. SIGINT and SIGTERM cancel the
// command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
}
