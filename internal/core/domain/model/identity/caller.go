package identity

import (
	"errors"
	"strings"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller constructor")

// Caller is the resolved identity making a request.
type Caller struct {
	subjectID string
	role      Role

	guard guard.ConstructorGuard
}

// NewCaller builds a Caller from a verified subject and role.
func NewCaller(subjectID string, role Role) (Caller, error) {
	if strings.TrimSpace(subjectID) == "" {
		return Caller{}, errs.NewValueIsRequiredError("subject_id")
	}
	return Caller{
		subjectID: subjectID,
		role:      ParseRole(string(role)),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Caller was created through NewCaller.
func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}

func (c Caller) SubjectID() string {
	return c.subjectID
}

func (c Caller) Role() Role {
	return c.role
}

func (c Caller) IsAdmin() bool {
	return c.role == Admin
}

// Owns reports whether the caller is the given owner.
func (c Caller) Owns(ownerID string) bool {
	return c.subjectID == ownerID
}

// CanAccess reports whether the caller may read an order owned by ownerID.
func (c Caller) CanAccess(ownerID string) bool {
	return c.IsAdmin() || c.Owns(ownerID)
}
