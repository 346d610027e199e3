// Package config provides configuration types and defaults for hdrtool.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrMissingInput indicates no input file path was provided.
	ErrMissingInput = errors.New("input file path is required")

	// ErrInvalidStreamIndex indicates a negative video stream index.
	ErrInvalidStreamIndex = errors.New("stream index must be non-negative")

	// ErrMissingFFprobeBin indicates an empty ffprobe binary path.
	ErrMissingFFprobeBin = errors.New("ffprobe binary path is required")
)
