package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct {
	failAfter int
	written   int
}

func (fw *failWriter) Write(p []byte) (int, error) {
	if fw.written >= fw.failAfter {
		return 0, errors.New("write failed")
	}
	fw.written += len(p)
	return len(p), nil
}

func TestLineWriter_NoError(t *testing.T) {
	var buf bytes.Buffer
	lw := &lineWriter{w: &buf}

	lw.printf("hello %s\n", "world")
	lw.println("line two")
	lw.block("a\nb")

	assert.NoError(t, lw.Err())
	assert.Equal(t, "hello world\nline two\na\nb\n", buf.String())
}

func TestLineWriter_KeepsFirstError(t *testing.T) {
	fw := &failWriter{failAfter: 0}
	lw := &lineWriter{w: fw}

	lw.printf("first")
	firstErr := lw.Err()
	assert.Error(t, firstErr)

	lw.printf("second")
	lw.block("third\nfourth")

	assert.Same(t, firstErr, lw.Err())
	assert.Equal(t, 0, fw.written)
}
