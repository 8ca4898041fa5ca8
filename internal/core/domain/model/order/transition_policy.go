package order

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// TransitionPolicy decides whether an order may move from one status to
// another. ApplyPatch consults it for every status change.
type TransitionPolicy interface {
	Allow(from, to Status) error
}

// PermissiveTransitions allows any enumerated status to follow any other,
// including backwards moves.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allow(_, to Status) error {
	return to.Validate()
}

// StrictTransitions only allows the forward lifecycle:
//
//	Pending ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Re-setting the current status is always allowed.
type StrictTransitions struct{}

func (StrictTransitions) Allow(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	for _, next := range forwardTransitions()[from] {
		if next == to {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s -> %s is not an allowed transition", from, to),
	)
}

func forwardTransitions() map[Status][]Status {
	//nolint:exhaustive // Delivered and Cancelled are final
	return map[Status][]Status{
		Pending:    {Processing, Cancelled},
		Processing: {Shipped, Cancelled},
		Shipped:    {Delivered},
	}
}
