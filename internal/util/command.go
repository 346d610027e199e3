// Package util provides utility functions for formatting and common operations.
package util

import "github.com/kballard/go-shellquote"

// FormatCommand renders a binary and its arguments as a single shell-safe
// string, suitable for logging the exact invocation.
func FormatCommand(bin string, args []string) string {
	return shellquote.Join(append([]string{bin}, args...)...)
}
