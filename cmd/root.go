package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "taskseed",
	Short: "Seed the Taskloom database with demo data",
	Long: `
taskseed wipes and repopulates a Taskloom database with a consistent
synthetic entity graph: users, workspaces, teams, projects with sections,
tasks and subtasks, activity logs, comments and reactions.

Intended for development, testing and demo environments only. Every run
destroys all existing rows first.`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./taskseed.config.json)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("taskseed.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
