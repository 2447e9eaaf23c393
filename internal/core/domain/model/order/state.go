package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// State is a lifecycle state of an order.
//
//	Created ──> Paid ──┬──> Accepted ──> Completed
//	                   └──> Cancelled
//
// The string values are the persisted and wire representation.
type State string

const (
	Created   State = "created"
	Paid      State = "paid"
	Accepted  State = "accepted"
	Cancelled State = "cancelled"
	Completed State = "completed"
)

// States lists every known state in lifecycle order.
func States() []State {
	return []State{Created, Paid, Accepted, Cancelled, Completed}
}

// successors is the transition table. The required actor of a step depends only on
// the target state, see RequiredRole.
var successors = map[State][]State{
	Created:   {Paid},
	Paid:      {Accepted, Cancelled},
	Accepted:  {Completed},
	Cancelled: nil,
	Completed: nil,
}

// ParseState validates a state coming from storage or a caller.
func ParseState(s string) (State, error) {
	state := State(s)
	if err := state.Validate(); err != nil {
		return "", err
	}
	return state, nil
}

func (s State) Validate() error {
	if _, ok := successors[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a known state", string(s)))
	}
	return nil
}

func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether no transition leaves s.
func (s State) IsTerminal() bool {
	next, ok := successors[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether next is a direct successor of s.
func (s State) CanTransitionTo(next State) bool {
	for _, candidate := range successors[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// RequiredRole returns who may move an order into target. Created is only ever
// written at creation, so it has no role.
func RequiredRole(target State) (Role, bool) {
	switch target {
	case Paid:
		return RoleCustomer, true
	case Accepted, Cancelled, Completed:
		return RoleRestaurant, true
	default:
		return "", false
	}
}
