package main

import (
	"fmt"
	"os"

	"suddenlyspaces/internal/config" // Custom package for configuration
	"suddenlyspaces/internal/db"     // Custom package for database access

	"github.com/spf13/cobra" // CLI framework
)

// migrateCmd applies the schema to the configured database
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := db.Open(config.LoadConfig()) // Connect using env configuration
			if err != nil {
				return err
			}
			return db.Migrate(gdb) // Run AutoMigrate for all models
		},
	}
}

// seedCmd loads the demo users, properties and applications
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample users, properties and applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			gdb, err := db.Open(config.LoadConfig()) // Connect using env configuration
			if err != nil {
				return err
			}
			return db.Seed(gdb) // Idempotent sample data load
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "spacectl",
		Short: "SuddenlySpaces administration tool",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
