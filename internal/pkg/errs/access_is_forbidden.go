package errs

import "fmt"

// AccessIsForbiddenError is returned when the caller's role or ownership does
// not permit the requested action.
type AccessIsForbiddenError struct {
	Action string
	Reason string
	Cause  error
}

func NewAccessIsForbiddenError(action, reason string) *AccessIsForbiddenError {
	return &AccessIsForbiddenError{Action: action, Reason: reason}
}

func NewAccessIsForbiddenErrorWithCause(action, reason string, cause error) *AccessIsForbiddenError {
	return &AccessIsForbiddenError{Action: action, Reason: reason, Cause: cause}
}

func (e *AccessIsForbiddenError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrAccessIsForbidden, e.Action, e.Reason), e.Cause)
}

func (e *AccessIsForbiddenError) Unwrap() error {
	return ErrAccessIsForbidden
}
