package kernel

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"oms/internal/pkg/errs"

	"github.com/google/uuid"
)

// IDLength is the length of the external hex representation of an ID.
const IDLength = 32

// ErrIDIsNotConstructed indicates that an ID was not initialized through NewID,
// IDFromString or IDFromUUID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID, IDFromString, or IDFromUUID")

// ID is a value object identifying an order. It wraps a version 7 UUID so
// that identifiers generated by one process sort in creation order, which the
// listing relies on to break created_at ties.
//
// The zero value is invalid.
//
// Example:
//
//	id := kernel.NewID()
//	fmt.Println(id.String()) // e.g. "0190f1c2a4b87c3d9e0f112233445566"
//
//	parsed, err := kernel.IDFromString("0190f1c2a4b87c3d9e0f112233445566")
//	if err != nil {
//	    // malformed reference
//	}
type ID struct {
	id uuid.UUID
}

// NewID generates a new time-ordered identifier.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return ID{id: uuid.New()}
	}
	return ID{id: id}
}

// IDFromString parses the external representation: exactly 32 hexadecimal
// characters. Upper case digits are accepted and normalized.
func IDFromString(s string) (ID, error) {
	if len(s) != IDLength {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%q is not a %d character hex string", s, IDLength),
		)
	}

	raw, err := hex.DecodeString(strings.ToLower(s))
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a hex string", s))
	}

	id, err := uuid.FromBytes(raw)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return IDFromUUID(id)
}

// IDFromUUID wraps a UUID read back from persistence.
func IDFromUUID(u uuid.UUID) (ID, error) {
	newID := ID{id: u}
	if err := newID.Validate(); err != nil {
		return ID{}, err
	}
	return newID, nil
}

// String returns the lowercase hex representation without separators.
func (i ID) String() string {
	return hex.EncodeToString(i.id[:])
}

// UUID returns the underlying UUID for storage adapters.
func (i ID) UUID() uuid.UUID {
	return i.id
}

func (i ID) IsEqual(other ID) bool {
	return i.id == other.id
}

// Compare orders IDs by their bytes, which for v7 is creation order.
func (i ID) Compare(other ID) int {
	return bytes.Compare(i.id[:], other.id[:])
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.id == uuid.Nil {
		return ErrIDIsNotConstructed
	}
	return nil
}
