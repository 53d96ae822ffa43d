// Package terminal wraps the capability probes the CLI needs: whether
// stdout is a live terminal, which drives colored output, and how many
// columns it has, which drives the width warning for text map dumps.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the column count cannot be determined,
// such as when output is piped.
const DefaultWidth = 80

// Width returns the terminal column count, or DefaultWidth when stdout
// is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// IsInteractive returns true when stdout is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
