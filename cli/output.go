package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Self-test failure, profile that cannot be computed
	ExitCommandError = 2 // Bad flags or arguments, unreadable request file
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// =============================================================================
// FORMATTER
// =============================================================================

// OutputFormatter renders command results in the selected format.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Render writes v as JSON or YAML, or hands the writer to text for the
// human-readable form.
func (f *OutputFormatter) Render(v any, text func(w io.Writer)) error {
	switch f.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = f.Writer.Write(append(b, '\n'))
		return err
	case FormatYAML:
		b, err := toYAML(v)
		if err != nil {
			return err
		}
		_, err = f.Writer.Write(b)
		return err
	default:
		text(f.Writer)
		return nil
	}
}

// toYAML goes through JSON so YAML keys match the json tags and keep
// struct field order.
func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("decode json as yaml: %w", err)
	}
	plainStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// plainStyle drops the flow and quoting styles inherited from JSON.
func plainStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plainStyle(c)
	}
}

// field writes one aligned "label value" line.
func field(w io.Writer, label, format string, args ...any) {
	fmt.Fprintf(w, "%-14s %s\n", label, fmt.Sprintf(format, args...))
}
