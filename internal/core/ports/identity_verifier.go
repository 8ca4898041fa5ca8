// Package ports defines the contracts between the order core and its
// adapters: the order store, the transaction boundary and the identity
// provider.
package ports

import (
	"context"

	"oms/internal/core/domain/model/identity"
)

// IdentityVerifier resolves a verified Caller from an opaque bearer
// credential. Implementations return an error for any credential that is
// malformed, expired or not signed by the expected issuer; the core never
// inspects the credential itself.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (identity.Caller, error)
}
