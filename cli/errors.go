package cli

import "fmt"

// Exit codes returned by the fieldcard binary.
const (
	ExitSuccess = 0 // Success
	ExitGeneral = 1 // General/unknown error
	ExitConfig  = 2 // Invalid YAML, invalid config values or locale file
	ExitStorage = 3 // Snapshot database cannot be opened or queried
	ExitSource  = 4 // Stats document, snapshot or Elasticsearch unavailable
	ExitRender  = 5 // Output could not be written
)

// ExitCoder is an interface for errors that carry a custom exit code and message.
type ExitCoder interface {
	ExitCode() int
	Message() string
}

// cliError is a typed error that carries an exit code.
type cliError struct {
	code    int
	message string
	err     error
}

// NewCLIError creates a new cliError with the given code and message.
func NewCLIError(code int, message string) *cliError {
	return &cliError{
		code:    code,
		message: message,
	}
}

// WrapError creates a new cliError wrapping an underlying error.
func WrapError(code int, message string, err error) *cliError {
	return &cliError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Error implements the error interface.
func (e *cliError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

// ExitCode returns the exit code for this error.
func (e *cliError) ExitCode() int {
	return e.code
}

// Message returns the formatted message for display.
func (e *cliError) Message() string {
	return fmt.Sprintf("Error: %s\n", e.Error())
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *cliError) Unwrap() error {
	return e.err
}

// ErrConfig creates a configuration error.
func ErrConfig(message string, err error) *cliError {
	return WrapError(ExitConfig, message, err)
}

// ErrStorage creates a snapshot storage error.
func ErrStorage(message string, err error) *cliError {
	return WrapError(ExitStorage, message, err)
}

// ErrSource creates an error for stats sources that cannot be read.
func ErrSource(message string, err error) *cliError {
	return WrapError(ExitSource, message, err)
}

// ErrSourceNotFound creates an error for a reference that is neither a file
// nor a saved snapshot.
func ErrSourceNotFound(ref string) *cliError {
	return NewCLIError(ExitSource, fmt.Sprintf("no stats file or snapshot matches %q", ref))
}

// ErrRender creates an output rendering error.
func ErrRender(message string, err error) *cliError {
	return WrapError(ExitRender, message, err)
}
