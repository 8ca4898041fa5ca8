// Package services provides domain services that orchestrate business rules
// spanning more than one domain model of the order system. It implements
// decisions that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderAccessPolicy: decides which caller may create, read or modify
//     which order, combining the identity model with the order aggregate
//
// Domain services hold no state and never touch persistence; use cases load
// what the service needs and act on its verdict.
package services
