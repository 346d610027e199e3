// Package config provides configuration types and defaults for hdrtool.
package config

import "fmt"

// Default constants
const (
	// DefaultFFprobeBin is the probing binary resolved from PATH when no
	// explicit path is given.
	DefaultFFprobeBin = "ffprobe"

	// DefaultStreamIndex selects the first video stream.
	DefaultStreamIndex = 0
)

// Config holds all configuration for a metadata extraction run.
type Config struct {
	// Input and probing
	InputPath   string
	StreamIndex int
	FFprobeBin  string

	// Logging
	LogDir string
	NoLog  bool

	// Output options
	Verbose    bool
	JSONOutput bool
}

// NewConfig creates a new Config with default values.
func NewConfig(inputPath string) *Config {
	return &Config{
		InputPath:   inputPath,
		StreamIndex: DefaultStreamIndex,
		FFprobeBin:  DefaultFFprobeBin,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrMissingInput
	}

	if c.StreamIndex < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidStreamIndex, c.StreamIndex)
	}

	if c.FFprobeBin == "" {
		return ErrMissingFFprobeBin
	}

	return nil
}
