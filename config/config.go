package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Language    string       `yaml:"language"`
	Quality     string       `yaml:"quality"`
	AIProvider  string       `yaml:"ai_provider"`
	NumVersions int          `yaml:"num_versions"`
	Concurrency int          `yaml:"concurrency"`
	Render      RenderConfig `yaml:"render"`
	Topics      TopicsConfig `yaml:"topics"`
	Paths       PathsConfig  `yaml:"paths"`
}

type RenderConfig struct {
	BaseURL         string `yaml:"base_url"`
	PollIntervalSec int    `yaml:"poll_interval_sec"`
	MaxAttempts     int    `yaml:"max_attempts"`
}

type TopicsConfig struct {
	Enabled    bool     `yaml:"enabled"`
	Subreddits []string `yaml:"subreddits"`
	Limit      int      `yaml:"limit"`
}

type PathsConfig struct {
	Images    string `yaml:"images"`
	Completed string `yaml:"completed"`
	Results   string `yaml:"results"`
	Videos    string `yaml:"videos"`
	Scripts   string `yaml:"scripts"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Language:    "ko",
		Quality:     "high",
		AIProvider:  "gemini",
		NumVersions: 3,
		Concurrency: 1,
		Render: RenderConfig{
			BaseURL:         "https://api.d-id.com",
			PollIntervalSec: 5,
			MaxAttempts:     60,
		},
		Topics: TopicsConfig{
			Limit: 10,
		},
		Paths: PathsConfig{
			Images:    "input/images",
			Completed: "input/completed",
			Results:   "output/results",
			Videos:    "output/videos",
			Scripts:   "output/scripts",
		},
	}
}

// Load reads a YAML config file and fills any unset field with defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.Quality == "" {
		c.Quality = d.Quality
	}
	if c.AIProvider == "" {
		c.AIProvider = d.AIProvider
	}
	if c.NumVersions <= 0 {
		c.NumVersions = d.NumVersions
	}
	if c.Concurrency <= 0 {
		c.Concurrency = d.Concurrency
	}
	if c.Render.BaseURL == "" {
		c.Render.BaseURL = d.Render.BaseURL
	}
	if c.Render.PollIntervalSec <= 0 {
		c.Render.PollIntervalSec = d.Render.PollIntervalSec
	}
	if c.Render.MaxAttempts <= 0 {
		c.Render.MaxAttempts = d.Render.MaxAttempts
	}
	if c.Topics.Limit <= 0 {
		c.Topics.Limit = d.Topics.Limit
	}
	if c.Paths.Images == "" {
		c.Paths.Images = d.Paths.Images
	}
	if c.Paths.Completed == "" {
		c.Paths.Completed = d.Paths.Completed
	}
	if c.Paths.Results == "" {
		c.Paths.Results = d.Paths.Results
	}
	if c.Paths.Videos == "" {
		c.Paths.Videos = d.Paths.Videos
	}
	if c.Paths.Scripts == "" {
		c.Paths.Scripts = d.Paths.Scripts
	}
}

// PollInterval returns the render polling interval as a duration
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Render.PollIntervalSec) * time.Second
}
