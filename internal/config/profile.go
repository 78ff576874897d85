package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML file overriding seed volumes, so demo and
// load-test environments can share one config while varying entity counts.
type Profile struct {
	Users        int   `yaml:"users"`
	Projects     int   `yaml:"projects"`
	CommentTasks int   `yaml:"comment_tasks"`
	RandSeed     int64 `yaml:"rand_seed"`
}

// ApplyProfile reads the profile file and overlays any non-zero values onto
// the config. A missing or unreadable file is a configuration error.
func (c *Config) ApplyProfile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed profile %s: %w", path, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to parse seed profile %s: %w", path, err)
	}

	if p.Users != 0 {
		c.Seed.Users = p.Users
	}
	if p.Projects != 0 {
		c.Seed.Projects = p.Projects
	}
	if p.CommentTasks != 0 {
		c.Seed.CommentTasks = p.CommentTasks
	}
	if p.RandSeed != 0 {
		c.Seed.RandSeed = p.RandSeed
	}

	return nil
}
