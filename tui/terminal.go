package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is used when terminal width cannot be detected.
	DefaultTerminalWidth = 100
	// MinTerminalWidth is the narrowest layout cards are drawn for.
	MinTerminalWidth = 40
	// MaxTerminalWidth is the widest layout cards are drawn for.
	MaxTerminalWidth = 240
)

// GetTerminalWidth returns the width of stdout, clamped to the supported range.
func GetTerminalWidth() int {
	return WriterWidth(os.Stdout)
}

// WriterWidth returns the width of the terminal behind w. Writers that are
// not terminals get DefaultTerminalWidth.
func WriterWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return ClampWidth(width)
}

// ClampWidth limits width to the supported range.
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxTerminalWidth {
		return MaxTerminalWidth
	}
	return width
}

// IsWriterTerminal returns true if w is backed by a terminal file descriptor.
func IsWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
