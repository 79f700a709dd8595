// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Input paths
	Job      string `json:"job,omitempty"`                              // Path to job posting text file
	JobURL   string `json:"job_url,omitempty" validate:"omitempty,url"` // URL to fetch job posting from
	Template string `json:"template,omitempty"`                         // Path to resume HTML template
	Skills   string `json:"skills,omitempty"`                           // Path to master skills catalog
	Projects string `json:"projects,omitempty"`                         // Path to projects bank
	Exper    string `json:"experience,omitempty"`                       // Path to experience bank

	// Output paths
	ResumeOut string `json:"resume_out,omitempty"` // Path for the tailored resume PDF
	LetterOut string `json:"letter_out,omitempty"` // Path for the tailored cover letter PDF

	// Model endpoint
	OllamaURL string `json:"ollama_url,omitempty" validate:"omitempty,url"` // Local inference endpoint base URL
	Model     string `json:"model,omitempty"`                               // Model name served by the endpoint

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// validate is the shared validator instance for config structs.
var validate = validator.New()

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Skills == "" {
		result.Skills = defaults.Skills
	}
	if result.Projects == "" {
		result.Projects = defaults.Projects
	}
	if result.Exper == "" {
		result.Exper = defaults.Exper
	}
	if result.ResumeOut == "" {
		result.ResumeOut = defaults.ResumeOut
	}
	if result.LetterOut == "" {
		result.LetterOut = defaults.LetterOut
	}
	if result.OllamaURL == "" {
		result.OllamaURL = defaults.OllamaURL
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
