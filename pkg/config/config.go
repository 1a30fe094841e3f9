// Package config defines core configuration types for stepmark.
// These types are pure data structures; loading and validation live here
// too, but no CLI concerns do.
package config

import "fmt"

// Entry specifies the grammar entry point used when parsing input.
type Entry string

const (
	// EntryAlgorithm parses input as a list of algorithm steps.
	EntryAlgorithm Entry = "algorithm"

	// EntryDocument parses input as a mixed sequence of paragraphs and
	// lists.
	EntryDocument Entry = "document"

	// EntryFragment parses input as a single run of inline content.
	EntryFragment Entry = "fragment"
)

// IsValid returns true if the entry point is one of the known values.
func (e Entry) IsValid() bool {
	switch e {
	case EntryAlgorithm, EntryDocument, EntryFragment:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for stepmark.
type Config struct {
	// Entry selects the grammar entry point ("algorithm", "document",
	// or "fragment").
	Entry Entry `yaml:"entry"`

	// OpaqueTags overrides the set of tags whose inner content is
	// captured verbatim. Empty means the built-in default set.
	OpaqueTags []string `yaml:"opaque_tags"`

	// CLI-level options (not persisted to config files).

	// Color controls colorized output: "auto", "always", "never".
	Color string `yaml:"-"`
}

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		Entry: EntryAlgorithm,
		Color: "auto",
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !c.Entry.IsValid() {
		return fmt.Errorf("invalid entry point %q (want algorithm, document, or fragment)", c.Entry)
	}
	return nil
}
