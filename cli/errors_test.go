package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIError(t *testing.T) {
	base := errors.New("disk full")

	tests := []struct {
		name    string
		err     *cliError
		code    int
		message string
	}{
		{"config", ErrConfig("invalid config", base), ExitConfig, "Error: invalid config: disk full\n"},
		{"storage", ErrStorage("failed to save snapshot", base), ExitStorage, "Error: failed to save snapshot: disk full\n"},
		{"source", ErrSource("failed to read stats document", base), ExitSource, "Error: failed to read stats document: disk full\n"},
		{"render", ErrRender("failed to render cards", base), ExitRender, "Error: failed to render cards: disk full\n"},
		{"not found", ErrSourceNotFound("abc"), ExitSource, "Error: no stats file or snapshot matches \"abc\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.ExitCode())
			assert.Equal(t, tt.message, tt.err.Message())
		})
	}
}

func TestCLIError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	err := fmt.Errorf("outer: %w", ErrStorage("failed", base))

	assert.ErrorIs(t, err, base)

	var coder ExitCoder
	assert.ErrorAs(t, err, &coder)
	assert.Equal(t, ExitStorage, coder.ExitCode())
}
