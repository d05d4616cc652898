package tui

import (
	"context"
	"io"
	"os"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// elapsedAfter is how long a spinner runs before it shows elapsed time.
const elapsedAfter = 2 * time.Second

type spinner struct {
	out      io.Writer
	interval time.Duration
	color    *Colorizer
	message  string
}

type SpinnerOption func(*spinner)

func WithWriter(w io.Writer) SpinnerOption {
	return func(s *spinner) {
		s.out = w
	}
}

func WithInterval(d time.Duration) SpinnerOption {
	return func(s *spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithColors(enabled bool) SpinnerOption {
	return func(s *spinner) {
		s.color = NewColorizer(enabled)
	}
}

func newSpinner(message string, opts ...SpinnerOption) *spinner {
	s := &spinner{
		out:      os.Stderr,
		interval: 100 * time.Millisecond,
		color:    NewColorizer(true),
		message:  message,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// frame renders one spinner line. Long waits get the elapsed seconds appended.
func (s *spinner) frame(i int, elapsed time.Duration) string {
	line := s.color.Apply(Cyan, spinnerFrames[i%len(spinnerFrames)]) + " " + s.message
	if elapsed >= elapsedAfter {
		line += " " + s.color.Dim(FormatElapsed(elapsed))
	}
	return line
}

// animate draws frames on lw until stop is closed or ctx is done.
func (s *spinner) animate(ctx context.Context, lw *lineWriter, stop <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	start := time.Now()
	for i := 0; ; i++ {
		lw.printf("\033[2K\r%s", s.frame(i, time.Since(start)))

		select {
		case <-stop:
		case <-ctx.Done():
		case <-ticker.C:
			continue
		}
		lw.printf("\033[2K\r")
		return
	}
}

// RunWithSpinner runs fn while animating a spinner on a terminal writer.
// Non-terminal writers get no output at all.
func RunWithSpinner[T any](ctx context.Context, message string, fn func(context.Context) (T, error), opts ...SpinnerOption) (T, error) {
	s := newSpinner(message, opts...)
	if !IsWriterTerminal(s.out) {
		return fn(ctx)
	}

	lw := &lineWriter{w: s.out}
	stop := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.animate(ctx, lw, stop)
	}()

	result, err := fn(ctx)

	close(stop)
	wg.Wait()

	if err != nil {
		return result, err
	}
	return result, lw.Err()
}
