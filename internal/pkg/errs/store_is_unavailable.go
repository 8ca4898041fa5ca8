package errs

import "fmt"

// StoreIsUnavailableError wraps a connectivity failure of the backing store.
// It is kept distinct from ObjectNotFoundError so callers never read an
// outage as an absent document.
type StoreIsUnavailableError struct {
	Operation string
	Cause     error
}

func NewStoreIsUnavailableError(operation string, cause error) *StoreIsUnavailableError {
	return &StoreIsUnavailableError{Operation: operation, Cause: cause}
}

func (e *StoreIsUnavailableError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStoreIsUnavailable, e.Operation), e.Cause)
}

func (e *StoreIsUnavailableError) Unwrap() error {
	return ErrStoreIsUnavailable
}
