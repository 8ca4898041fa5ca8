package identity

// Role is the capability class of a caller.
type Role string

const (
	Customer Role = "customer"
	Admin    Role = "admin"
)

// ParseRole maps a role claim to a Role. Anything other than "admin" is a
// customer, so an unexpected claim never grants more than the least privilege.
func ParseRole(s string) Role {
	if Role(s) == Admin {
		return Admin
	}
	return Customer
}

func (r Role) String() string {
	return string(r)
}
