// Package identity models the caller of an operation: a verified subject id
// and a role. It carries no knowledge of how the caller was authenticated.
package identity
