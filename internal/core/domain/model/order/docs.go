// Package order provides the Order aggregate and the rules of its lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning identity, owner, items, derived total
//     and timestamps
//   - Item: a line item value object (product reference, name, unit price,
//     quantity)
//   - Status: the fixed enumeration Pending, Processing, Shipped, Delivered,
//     Cancelled
//   - Patch: an explicit partial update with per-field presence
//   - TransitionPolicy: the single place deciding which status changes are
//     legal
//
// Key business rules:
//   - An order has at least one item; every item has price > 0 and quantity > 0
//   - total_price is always the sum of price * quantity and is never accepted
//     from a caller
//   - created_at is set once; updated_at starts equal to it and advances on
//     every applied patch, including empty ones
//   - id and owner never change after creation
//
// Derived fields are recomputed by NewOrder, RestoreOrder and ApplyPatch; there
// is no other way to change them.
package order
