// Package cliconfig holds the CLI configuration for id3mend and the
// precedence logic merging flags, environment variables and the optional
// TOML config file.
package cliconfig

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/id3mend/internal/domain"
)

// Config holds CLI configuration for id3mend.
type Config struct {
	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string

	// Fields is the ordered list of ID3 frame identifiers to inspect.
	Fields []string

	// Extensions is the file extension allow-list, matched case
	// insensitively.
	Extensions []string

	// Watch keeps watching directory arguments for new files after the
	// initial scan.
	Watch bool

	// Summary prints the per-run counter table after a scan.
	Summary bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		Fields:     append([]string(nil), domain.ScanFields...),
		Extensions: []string{".mp3"},
		Summary:    true,
	}
}

// Validate checks the configuration for errors and normalizes derived
// values: field identifiers are uppercased, extensions lowercased and given
// a leading dot.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", domain.ErrInvalidConfig, c.LogLevel)
	}

	if len(c.Fields) == 0 {
		return fmt.Errorf("%w: at least one field is required", domain.ErrInvalidConfig)
	}
	for i, f := range c.Fields {
		f = strings.ToUpper(strings.TrimSpace(f))
		if len(f) != 4 {
			return fmt.Errorf("%w: frame id %q", domain.ErrInvalidConfig, c.Fields[i])
		}
		c.Fields[i] = f
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("%w: at least one extension is required", domain.ErrInvalidConfig)
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: extension %q", domain.ErrInvalidConfig, c.Extensions[i])
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setStringsFromList splits a comma-separated list and sets the destination.
// Used for environment variables that come as single strings.
func (s *configSetter) setStringsFromList(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
