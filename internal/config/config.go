// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Job source
	Job     string `json:"job,omitempty"`      // path to a job posting text file
	JobURL  string `json:"job_url,omitempty"`  // URL to fetch the job posting from
	JobText string `json:"job_text,omitempty"` // pasted job advert text

	// Candidate input
	CV    string `json:"cv,omitempty"`    // path to the CV document (pdf/docx/txt)
	Title string `json:"title,omitempty"` // target job title override

	// Behavior
	TopN        int    `json:"top_n,omitempty"`       // keyword count
	Out         string `json:"out,omitempty"`         // revamped document output path
	UseBrowser  bool   `json:"use_browser,omitempty"` // render SPA pages in a headless browser
	Verbose     bool   `json:"verbose,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields
// are checked by CLI flag validation after merging, not here.
func (c *Config) Validate() error {
	sources := 0
	for _, set := range []bool{c.Job != "", c.JobURL != "", c.JobText != ""} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'job', 'job_url' and 'job_text' are mutually exclusive")
	}

	if c.TopN < 0 {
		return fmt.Errorf("config error: 'top_n' must be non-negative")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.CV != "" {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags; bools are not merged because unset and false are indistinguishable.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.JobText == "" {
		result.JobText = defaults.JobText
	}
	if result.CV == "" {
		result.CV = defaults.CV
	}
	if result.Title == "" {
		result.Title = defaults.Title
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}

	return result
}
