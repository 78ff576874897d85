package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/taskloom/taskseed/internal/config"
	"github.com/taskloom/taskseed/internal/dbcheck"
	"github.com/taskloom/taskseed/internal/seeder"
	"github.com/taskloom/taskseed/internal/store"
)

var (
	seedUsers        int
	seedProjects     int
	seedCommentTasks int
	seedProfile      string
	seedRandSeed     int64
	seedVerbose      bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Wipe the database and regenerate all demo data",
	Long: `
Run the full seeding pipeline:

1. Check the connection string for common misconfigurations
2. Verify the database is reachable (3 attempts, 2s apart)
3. Delete all rows in reverse dependency order
4. Create users, workspaces, teams, projects, tasks, comments
5. Print a summary of what was created

⚠️  WARNING: This permanently deletes all existing data!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSeedConfig()
		if err != nil {
			return err
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

		summary, err := seeder.Run(cmd.Context(), st, seeder.Options{
			Users:        cfg.Seed.Users,
			Projects:     cfg.Seed.Projects,
			CommentTasks: cfg.Seed.CommentTasks,
			RandSeed:     cfg.Seed.RandSeed,
		})
		if err != nil {
			return err
		}

		seeder.PrintSummary(summary)
		return nil
	},
}

func loadSeedConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if seedProfile != "" {
		if err := cfg.ApplyProfile(seedProfile); err != nil {
			return nil, err
		}
	}
	if seedUsers > 0 {
		cfg.Seed.Users = seedUsers
	}
	if seedProjects > 0 {
		cfg.Seed.Projects = seedProjects
	}
	if seedCommentTasks > 0 {
		cfg.Seed.CommentTasks = seedCommentTasks
	}
	if seedRandSeed != 0 {
		cfg.Seed.RandSeed = seedRandSeed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore resolves the connection string, runs the static diagnostics and
// constructs the store. Diagnostics fail fast here, before anything touches
// the database.
func openStore(cfg *config.Config) (store.Store, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	if cfg.Database.Provider != "memory" {
		if issues := dbcheck.CheckURL(cfg.Database.Provider, dbURL); len(issues) > 0 {
			for _, issue := range issues {
				color.Red("❌ %s", issue.Error())
			}
			return nil, fmt.Errorf("connection string failed %d check(s)", len(issues))
		}
	}

	return store.New(cfg.Database.Provider, dbURL, seedVerbose)
}

func confirmDestructive() bool {
	color.Yellow("⚠️  This will permanently delete ALL data in the target database.")
	fmt.Print("Type 'yes' to continue: ")
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line) == "yes"
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedUsers, "users", 0, "Number of users to create (overrides config)")
	seedCmd.Flags().IntVar(&seedProjects, "projects", 0, "Number of projects to create (overrides config)")
	seedCmd.Flags().IntVar(&seedCommentTasks, "comment-tasks", 0, "Number of tasks that receive comments (overrides config)")
	seedCmd.Flags().StringVar(&seedProfile, "profile", "", "YAML seed profile overriding entity counts")
	seedCmd.Flags().Int64Var(&seedRandSeed, "seed", 0, "Random seed for reproducible runs (0 = time-based)")
	seedCmd.Flags().BoolVar(&seedVerbose, "verbose", false, "Log every SQL statement")
}
