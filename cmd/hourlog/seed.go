package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/olegiv/hourlog-go/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample data set",
	Long: `Insert the sample data set: users test1 and test2, categories Work and
Exercise, activities Coding and Gym, two logs and two time reports.

Seeding is skipped when the database already has categories.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore(db)

		if err := store.Seed(cmd.Context(), db); err != nil {
			return err
		}

		color.Green("✓ Sample data ready")
		return nil
	},
}
