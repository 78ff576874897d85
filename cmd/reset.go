package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taskloom/taskseed/internal/config"
	"github.com/taskloom/taskseed/internal/seeder"
	"github.com/taskloom/taskseed/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all rows without reseeding",
	Long: `
Delete every row across all entity collections in reverse dependency order
(reactions first, users last) and print the per-collection counts.

Safe to run twice: a second run deletes zero rows.

⚠️  WARNING: This will permanently delete all data in your database!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirmDestructive() {
			color.Yellow("Aborted.")
			return nil
		}

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		deleted, err := seeder.Reset(cmd.Context(), st)
		if err != nil {
			return err
		}

		var total int64
		for _, kind := range store.DeletionOrder() {
			color.White("  %s: %d deleted", kind, deleted[kind])
			total += deleted[kind]
		}
		color.Green("✅ Reset complete, %d rows deleted", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
