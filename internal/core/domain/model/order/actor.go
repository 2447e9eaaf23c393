package order

import (
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Role is the kind of party acting on an order.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleRestaurant:
		return Role(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the party requesting a transition: a customer or a restaurant, by id.
type Actor struct {
	role Role
	id   kernel.UUID
}

func NewActor(role Role, id kernel.UUID) (Actor, error) {
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id}, nil
}

// Customer is shorthand for NewActor(RoleCustomer, id) with an already valid id.
func Customer(id kernel.UUID) Actor {
	return Actor{role: RoleCustomer, id: id}
}

// Restaurant is shorthand for NewActor(RoleRestaurant, id) with an already valid id.
func Restaurant(id kernel.UUID) Actor {
	return Actor{role: RoleRestaurant, id: id}
}

func (a Actor) Role() Role { return a.role }

func (a Actor) ID() kernel.UUID { return a.id }

func (a Actor) String() string {
	return fmt.Sprintf("%s %s", a.role, a.id)
}
