// Package meta selects how a compiled program is searched and runs the
// search.
//
// Every program is executed by the backtracking matcher. What the engine
// decides is where the matcher is tried:
//   - only at offset 0, for programs starting with '^';
//   - nowhere, when the prefix literals alone prove the match;
//   - at candidates from a prefilter;
//   - at every offset.
package meta

import "github.com/duarterr/miniregex/syntax"

// Config controls compilation limits and search behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxInstructions = 64 // allow longer patterns
//	engine, err := meta.Compile(`\d+\.\d+`, config)
type Config struct {
	// MaxInstructions is the capacity of a compiled program, counting the
	// end sentinel. Default: 30.
	MaxInstructions int

	// ClassBufferSize is the byte budget shared by all character classes
	// of a pattern. Each class costs its length plus one, and one byte is
	// reserved. Default: 40.
	ClassBufferSize int

	// EnablePrefilter enables prefix-literal prefiltering.
	// Default: true
	EnablePrefilter bool

	// MaxPrefilterLiterals caps the number of prefix literals extracted.
	// Default: 64
	MaxPrefilterLiterals int

	// MaxClassExpansion is the largest byte set one instruction may add
	// to the prefix literals. Default: 64
	MaxClassExpansion int
}

// DefaultConfig returns the default configuration. The limits match the
// historical fixed-size engine: 30 instructions and a 40-byte class buffer.
func DefaultConfig() Config {
	limits := syntax.DefaultLimits()
	return Config{
		MaxInstructions:      limits.MaxInstructions,
		ClassBufferSize:      limits.ClassBufferSize,
		EnablePrefilter:      true,
		MaxPrefilterLiterals: 64,
		MaxClassExpansion:    64,
	}
}

// Limits returns the compiler limits of the configuration.
func (c Config) Limits() syntax.Limits {
	return syntax.Limits{
		MaxInstructions: c.MaxInstructions,
		ClassBufferSize: c.ClassBufferSize,
	}
}

// Validate checks that every parameter is in range.
//
// Valid ranges:
//   - MaxInstructions: 2 to 65,536
//   - ClassBufferSize: 1 to 1,048,576
//   - MaxPrefilterLiterals: 1 to 1,000 (when prefiltering)
//   - MaxClassExpansion: 1 to 256 (when prefiltering)
func (c Config) Validate() error {
	if c.MaxInstructions < 2 || c.MaxInstructions > 1<<16 {
		return &ConfigError{
			Field:   "MaxInstructions",
			Message: "must be between 2 and 65,536",
		}
	}
	if c.ClassBufferSize < 1 || c.ClassBufferSize > 1<<20 {
		return &ConfigError{
			Field:   "ClassBufferSize",
			Message: "must be between 1 and 1,048,576",
		}
	}

	if c.EnablePrefilter {
		if c.MaxPrefilterLiterals < 1 || c.MaxPrefilterLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxPrefilterLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
		if c.MaxClassExpansion < 1 || c.MaxClassExpansion > 256 {
			return &ConfigError{
				Field:   "MaxClassExpansion",
				Message: "must be between 1 and 256",
			}
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "miniregex: invalid config: " + e.Field + ": " + e.Message
}
