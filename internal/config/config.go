package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

type Seed struct {
	Users        int   `json:"users" mapstructure:"users"`
	Projects     int   `json:"projects" mapstructure:"projects"`
	CommentTasks int   `json:"comment_tasks" mapstructure:"comment_tasks"`
	RandSeed     int64 `json:"rand_seed" mapstructure:"rand_seed"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Seed.Users == 0 {
		cfg.Seed.Users = 50
	}
	if cfg.Seed.Projects == 0 {
		cfg.Seed.Projects = 20
	}
	if cfg.Seed.CommentTasks == 0 {
		cfg.Seed.CommentTasks = 30
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	if c.Database.Provider == "memory" {
		return "", nil
	}
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3", "memory"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	if c.Seed.Users < 1 {
		return fmt.Errorf("seed.users must be at least 1 (the fixed test account)")
	}
	if c.Seed.Projects < 0 {
		return fmt.Errorf("seed.projects cannot be negative")
	}
	if c.Seed.CommentTasks < 0 {
		return fmt.Errorf("seed.comment_tasks cannot be negative")
	}

	return nil
}
