package config

import (
	"github.com/dshills/diskview/internal/logging"
)

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	problems = append(problems, validateLogging(c)...)
	problems = append(problems, validateUI(c)...)
	if c.Scan.Workers < 1 {
		problems = append(problems, "scan.workers must be positive")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validateLogging(c *Config) []string {
	var problems []string
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		problems = append(problems, "logging.level: "+err.Error())
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, `logging.format must be "console" or "json"`)
	}
	return problems
}

func validateUI(c *Config) []string {
	var problems []string
	if c.UI.MinWidth < 1 {
		problems = append(problems, "ui.min_width must be positive")
	}
	if c.UI.MinHeight < 1 {
		problems = append(problems, "ui.min_height must be positive")
	}
	if c.UI.Columns < 1 {
		problems = append(problems, "ui.columns must be positive")
	}
	if c.UI.MaxZoom < 0 {
		problems = append(problems, "ui.max_zoom must be non-negative")
	}
	return problems
}
