// Package kernel provides core domain primitives shared by the order model.
//
// The package includes:
//   - ID: the opaque, time-ordered identifier assigned to an order at creation
//   - Clock: the source of "now" used to stamp created_at and updated_at
//
// ID is externally a fixed-length lowercase hex string. Parsing it is the
// boundary between a malformed reference (client error) and a well-formed
// reference to an absent order.
package kernel
