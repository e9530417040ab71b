package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column width of the terminal attached to f, or
// fallback when f is not a terminal or its size cannot be determined.
func TerminalWidth(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
