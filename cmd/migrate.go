package cmd

import (
	"fmt"
	"strconv"

	"govern/config"
	"govern/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the PostgreSQL document schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		databaseURL, err := migrationDatabaseURL()
		if err != nil {
			return err
		}
		return database.MigrateUp(databaseURL)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		steps, err := parseSteps(args)
		if err != nil {
			return err
		}
		databaseURL, err := migrationDatabaseURL()
		if err != nil {
			return err
		}
		return database.MigrateDown(databaseURL, steps)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current migration version",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		databaseURL, err := migrationDatabaseURL()
		if err != nil {
			return err
		}
		return database.MigrateStatus(databaseURL)
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func migrationDatabaseURL() (string, error) {
	databaseURL, databaseName, err := config.LoadDatabase()
	if err != nil {
		return "", err
	}
	return database.ConstructDatabaseURL(databaseURL, databaseName), nil
}

// parseSteps reads the optional rollback step count
func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	steps, err := strconv.Atoi(args[0])
	if err != nil || steps <= 0 {
		return 0, fmt.Errorf("steps must be a positive integer, got %q", args[0])
	}
	return steps, nil
}
