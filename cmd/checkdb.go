package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taskloom/taskseed/internal/config"
	"github.com/taskloom/taskseed/internal/dbcheck"
)

var checkdbCmd = &cobra.Command{
	Use:   "checkdb",
	Short: "Statically check the database connection string",
	Long: `
Inspect the configured connection string for common misconfigurations
(placeholder credentials, pooled-vs-direct port mismatch, wrong scheme)
without connecting. Exits non-zero if any check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		issues := dbcheck.CheckURL(cfg.Database.Provider, dbURL)
		if len(issues) == 0 {
			color.Green("✅ Connection string looks good")
			return nil
		}

		for _, issue := range issues {
			color.Red("❌ %s", issue.Message)
			color.Yellow("   💡 %s", issue.Hint)
		}
		return fmt.Errorf("connection string failed %d check(s)", len(issues))
	},
}

func init() {
	rootCmd.AddCommand(checkdbCmd)
}
