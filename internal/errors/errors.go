package errors

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Re-exported helpers so callers need a single errors import.
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithHint    = crdb.WithHint
	Is          = crdb.Is
	As          = crdb.As
	GetAllHints = crdb.GetAllHints
)

// Standard application errors
var (
	ErrEmptyInput       = New("input is empty or contains only whitespace")
	ErrInvalidJSON      = New("invalid JSON format")
	ErrUnsupportedShape = New("input shape is not supported by this transform")
	ErrTooDeep          = New("input nesting exceeds the configured maximum depth")
	ErrFileNotFound     = New("file not found")
	ErrFileEmpty        = New("file is empty")
	ErrNoInput          = New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrInvalidFilePath  = New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput     ErrorType = "input"
	ErrorTypeParsing   ErrorType = "parsing"
	ErrorTypeTransform ErrorType = "transform"
	ErrorTypeConfig    ErrorType = "config"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInput, Message: message, Err: err}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeParsing, Message: message, Err: err}
}

// NewTransformError creates a new error raised by a transform precondition
func NewTransformError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeTransform, Message: message, Err: err}
}

// NewConfigError creates a new error related to configuration
func NewConfigError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeConfig, Message: message, Err: err}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeOutput, Message: message, Err: err}
}

// ErrorKind is the machine-checkable classification handed to callers that
// localize messages themselves.
type ErrorKind string

const (
	KindEmptyInput        ErrorKind = "EmptyInput"
	KindInvalidJSONSyntax ErrorKind = "InvalidJsonSyntax"
	KindUnsupportedShape  ErrorKind = "UnsupportedShape"
	KindUnknown           ErrorKind = "Unknown"
)

// Kind classifies err.
func Kind(err error) ErrorKind {
	var syntaxErr *SyntaxError
	switch {
	case err == nil:
		return KindUnknown
	case Is(err, ErrEmptyInput):
		return KindEmptyInput
	case As(err, &syntaxErr), Is(err, ErrInvalidJSON):
		return KindInvalidJSONSyntax
	case Is(err, ErrUnsupportedShape), Is(err, ErrTooDeep):
		return KindUnsupportedShape
	default:
		return KindUnknown
	}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var syntaxErr *SyntaxError
	if As(err, &syntaxErr) {
		var b strings.Builder
		b.WriteString("JSON syntax error")
		if syntaxErr.Position != nil {
			fmt.Fprintf(&b, " at line %d, column %d", syntaxErr.Position.Line, syntaxErr.Position.Column)
		}
		fmt.Fprintf(&b, ": %s", syntaxErr.Message)
		if syntaxErr.Hint.Suggestion != "" {
			fmt.Fprintf(&b, "\nHint: %s", syntaxErr.Hint.Suggestion)
		}
		return b.String()
	}

	var appErr *AppError
	if As(err, &appErr) {
		msg := appErr.Message
		if hints := GetAllHints(err); len(hints) > 0 {
			msg += "\nHint: " + strings.Join(hints, "\nHint: ")
		}
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", msg)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", msg)
		case ErrorTypeTransform:
			return fmt.Sprintf("Transform error: %s", msg)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", msg)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", msg)
		default:
			return fmt.Sprintf("Error: %s", msg)
		}
	}

	if Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if Is(err, ErrUnsupportedShape) {
		return "Error: The input shape is not supported by this transform."
	}
	if Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	return fmt.Sprintf("Error: %v", err)
}
