package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsOutOfRange  = errors.New("value is out of range")
	ErrValueIsRequired    = errors.New("value is required")
	ErrAccessIsForbidden  = errors.New("access is forbidden")
	ErrStoreIsUnavailable = errors.New("store is unavailable")
)

// IsInvalidInput reports whether err belongs to the invalid input family.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// ParamName returns the name of the first offending parameter carried by err,
// or an empty string when err carries none.
func ParamName(err error) string {
	var invalid *ValueIsInvalidError
	if errors.As(err, &invalid) {
		return invalid.ParamName
	}
	var required *ValueIsRequiredError
	if errors.As(err, &required) {
		return required.ParamName
	}
	var outOfRange *ValueIsOutOfRangeError
	if errors.As(err, &outOfRange) {
		return outOfRange.ParamName
	}
	return ""
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, cause.Error())
}

func sanitize(value any) string {
	s := fmt.Sprintf("%v", value)
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}
