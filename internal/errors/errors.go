// Package errors provides structured error types for hdrtool operations.
package errors

import (
	"errors"
	"fmt"
	"os/exec"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// KindPath represents path-related errors.
	KindPath ErrorKind = iota
	// KindCommand represents external command execution errors.
	KindCommand
	// KindJSONParse represents JSON parsing errors.
	KindJSONParse
	// KindConfig represents configuration validation errors.
	KindConfig
	// KindStreamNotFound represents an invalid or out-of-range video stream selection.
	KindStreamNotFound
	// KindMalformedMetadata represents HDR side data that is present but structurally incomplete.
	KindMalformedMetadata
	// KindInvalidRational represents a numeric field that cannot be parsed as a rational.
	KindInvalidRational
	// KindInvariantViolation represents an internal consistency check failure.
	KindInvariantViolation
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindPath:
		return "Path error"
	case KindCommand:
		return "Command error"
	case KindJSONParse:
		return "JSON parse error"
	case KindConfig:
		return "Configuration error"
	case KindStreamNotFound:
		return "Stream not found"
	case KindMalformedMetadata:
		return "Malformed metadata"
	case KindInvalidRational:
		return "Invalid rational"
	case KindInvariantViolation:
		return "Invariant violation"
	default:
		return "Unknown error"
	}
}

// CommandErrorKind represents the type of command error.
type CommandErrorKind int

const (
	// CommandStart means the command failed to start.
	CommandStart CommandErrorKind = iota
	// CommandWait means waiting for the command failed.
	CommandWait
	// CommandFailed means the command returned non-zero exit status.
	CommandFailed
)

// CommandError represents an error from executing an external command.
type CommandError struct {
	Command    string
	Kind       CommandErrorKind
	ExitCode   int
	Stderr     string
	Underlying error
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case CommandStart:
		return fmt.Sprintf("failed to execute %s: %v", e.Command, e.Underlying)
	case CommandWait:
		return fmt.Sprintf("failed to wait for %s: %v", e.Command, e.Underlying)
	case CommandFailed:
		if e.Stderr != "" {
			return fmt.Sprintf("command %s failed with exit code %d: %s", e.Command, e.ExitCode, e.Stderr)
		}
		return fmt.Sprintf("command %s failed with exit code %d", e.Command, e.ExitCode)
	default:
		return fmt.Sprintf("command %s error: %v", e.Command, e.Underlying)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Underlying
}

// CoreError is the main error type for hdrtool operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewPathError creates a new path-related error.
func NewPathError(message string) *CoreError {
	return &CoreError{Kind: KindPath, Message: message}
}

// NewCommandError creates a new command execution error.
func NewCommandError(cmd string, kind CommandErrorKind, underlying error) *CoreError {
	cmdErr := &CommandError{
		Command:    cmd,
		Kind:       kind,
		Underlying: underlying,
	}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewCommandStartError creates an error for when a command fails to start.
func NewCommandStartError(cmd string, err error) *CoreError {
	return NewCommandError(cmd, CommandStart, err)
}

// NewCommandWaitError creates an error for when waiting for a command fails.
func NewCommandWaitError(cmd string, err error) *CoreError {
	return NewCommandError(cmd, CommandWait, err)
}

// NewCommandFailedError creates an error for when a command returns non-zero exit status.
func NewCommandFailedError(cmd string, exitCode int, stderr string) *CoreError {
	cmdErr := &CommandError{
		Command:  cmd,
		Kind:     CommandFailed,
		ExitCode: exitCode,
		Stderr:   stderr,
	}
	return &CoreError{Kind: KindCommand, Message: cmdErr.Error(), Underlying: cmdErr}
}

// NewJSONParseError creates a new JSON parsing error.
func NewJSONParseError(message string, underlying error) *CoreError {
	return &CoreError{Kind: KindJSONParse, Message: message, Underlying: underlying}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string) *CoreError {
	return &CoreError{Kind: KindConfig, Message: message}
}

// NewStreamNotFoundError creates an error for an out-of-range video stream index.
func NewStreamNotFoundError(index, videoStreams int) *CoreError {
	if videoStreams == 0 {
		return &CoreError{Kind: KindStreamNotFound, Message: "no video stream found in probe output"}
	}
	return &CoreError{
		Kind:    KindStreamNotFound,
		Message: fmt.Sprintf("video stream index %d out of range, probe output has %d video stream(s)", index, videoStreams),
	}
}

// NewMalformedMetadataError creates an error for structurally incomplete side data.
func NewMalformedMetadataError(message string) *CoreError {
	return &CoreError{Kind: KindMalformedMetadata, Message: message}
}

// NewInvalidRationalError creates an error for an unparsable rational field.
func NewInvalidRationalError(field, raw string) *CoreError {
	return &CoreError{
		Kind:    KindInvalidRational,
		Message: fmt.Sprintf("field %s: %q is not a valid non-negative rational", field, raw),
	}
}

// NewInvariantViolationError creates an error for a failed internal consistency check.
// These indicate a defect in the pipeline rather than bad input.
func NewInvariantViolationError(message string) *CoreError {
	return &CoreError{Kind: KindInvariantViolation, Message: message}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// IsStreamNotFound checks if the error is a stream selection error.
func IsStreamNotFound(err error) bool {
	return IsKind(err, KindStreamNotFound)
}

// IsMalformedMetadata checks if the error is a malformed side data error.
func IsMalformedMetadata(err error) bool {
	return IsKind(err, KindMalformedMetadata)
}

// IsInvalidRational checks if the error is a rational parsing error.
func IsInvalidRational(err error) bool {
	return IsKind(err, KindInvalidRational)
}

// WrapExecError wraps an exec.ExitError into a CoreError.
func WrapExecError(cmd string, err error, stderr string) *CoreError {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return NewCommandFailedError(cmd, exitErr.ExitCode(), stderr)
	}
	return NewCommandStartError(cmd, err)
}
