package tui

import (
	"fmt"
	"io"
	"strings"
)

// lineWriter wraps an io.Writer and keeps the first write error. Writes
// after an error are skipped, so callers check Err once at the end.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func (lw *lineWriter) println(args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintln(lw.w, args...)
}

// block writes a multi-line string, one line per write, with a newline
// after the last line.
func (lw *lineWriter) block(s string) {
	for _, line := range strings.Split(s, "\n") {
		lw.println(line)
	}
}

// Err returns the first error encountered during any write, or nil.
func (lw *lineWriter) Err() error {
	return lw.err
}
