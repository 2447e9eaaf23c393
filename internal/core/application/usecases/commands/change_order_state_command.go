package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrChangeOrderStateCommandIsNotConstructed = errors.New(
	"ChangeOrderStateCommand must be created via NewChangeOrderStateCommand constructor",
)

// ChangeOrderStateCommand asks to move an order to a target state on behalf of an
// actor. The target is not checked here: whether it is reachable, and by whom, is
// decided against the stored order.
type ChangeOrderStateCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	target        order.State
	actor         order.Actor
	paymentMethod string

	guard guard.ConstructorGuard
}

// NewChangeOrderStateCommand builds the command. paymentMethod is only used when
// target is order.Paid and may be empty.
func NewChangeOrderStateCommand(
	orderID kernel.UUID,
	target order.State,
	actor order.Actor,
	paymentMethod string,
) (ChangeOrderStateCommand, error) {
	cmd := ChangeOrderStateCommand{
		target:        target,
		paymentMethod: paymentMethod,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ChangeOrderStateCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStateCommandIsNotConstructed)
}

func (c ChangeOrderStateCommand) OrderID() kernel.UUID { return c.orderID }

func (c ChangeOrderStateCommand) Target() order.State { return c.target }

func (c ChangeOrderStateCommand) Actor() order.Actor { return c.actor }

func (c ChangeOrderStateCommand) PaymentMethod() string { return c.paymentMethod }

func (c *ChangeOrderStateCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStateCommand) setActor(actor order.Actor) error {
	valid, err := order.NewActor(actor.Role(), actor.ID())
	if err != nil {
		return err
	}
	c.actor = valid
	return nil
}
