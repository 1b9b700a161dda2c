package enhancedenum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// CodeInvalidInput means the input is not a shape that can be turned
	// into an enum definition.
	CodeInvalidInput ErrorCode = "invalid_input"

	// CodeInvalidDefinition means the input has the right shape but its
	// contents are inconsistent: missing keys, mixed case styles, values
	// without a common type.
	CodeInvalidDefinition ErrorCode = "invalid_definition"

	// CodeInvalidOption means a generation option has an unknown value.
	CodeInvalidOption ErrorCode = "invalid_option"

	// CodeRender means the template failed to render.
	CodeRender ErrorCode = "render_failed"
)

// Error is the single error type returned by the code generator. The
// underlying cause, if any, is available through errors.Unwrap, errors.Is
// and errors.As.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new error without an underlying cause.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Errorf creates a new error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates a new error with a formatted message around err.
func WrapError(code ErrorCode, err error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// optionError converts an options validation failure into an *Error.
func optionError(err error) *Error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return WrapError(CodeInvalidOption, err, "invalid options")
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, fmt.Sprintf("%s: %s (got %q)", ve.Field(), formatValidationError(ve), fmt.Sprint(ve.Value())))
	}
	return WrapError(CodeInvalidOption, err, "%s", strings.Join(messages, "; "))
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "printascii":
		return "must contain only printable ASCII characters"
	case "max":
		return fmt.Sprintf("must be at most %s characters", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
