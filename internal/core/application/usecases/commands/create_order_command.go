package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a customer's cart submission. Its shape is checked here;
// catalog rules and pricing are checked by services.OrderComposer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, restaurantID, "A3", lines, "no onion", 5000)
//	if err != nil {
//	    return fmt.Errorf("invalid cart: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	table        string
	lines        []services.OrderLine
	remark       string
	claimedPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand assigns a fresh order id and validates the cart shape.
// All violations are reported together.
func NewCreateOrderCommand(
	customerID, restaurantID kernel.UUID,
	table string,
	lines []services.OrderLine,
	remark string,
	claimedPrice kernel.Money,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID: kernel.NewUUID(),
		remark:  remark,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setTable(table),
		cmd.setLines(lines),
		cmd.setClaimedPrice(claimedPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

func (c CreateOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }

func (c CreateOrderCommand) Table() string { return c.table }

func (c CreateOrderCommand) Lines() []services.OrderLine {
	return append([]services.OrderLine(nil), c.lines...)
}

func (c CreateOrderCommand) Remark() string { return c.remark }

// ClaimedPrice is the total the client displayed to the customer.
func (c CreateOrderCommand) ClaimedPrice() kernel.Money { return c.claimedPrice }

// DishIDs returns the distinct dish ids in request order.
func (c CreateOrderCommand) DishIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.lines))
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, line := range c.lines {
		if _, ok := seen[line.DishID]; ok {
			continue
		}
		seen[line.DishID] = struct{}{}
		ids = append(ids, line.DishID)
	}
	return ids
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setTable(table string) error {
	if table == "" {
		return errs.NewValueIsRequiredError("table")
	}
	c.table = table
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var lineErrs []error
	for _, line := range lines {
		if err := line.DishID.Validate(); err != nil {
			lineErrs = append(lineErrs, err)
		}
		if line.Count < 1 || line.Count > order.MaxLineCount {
			lineErrs = append(lineErrs, errs.NewValueIsOutOfRangeError("count", line.Count, 1, order.MaxLineCount))
		}
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lines = make([]services.OrderLine, 0, len(lines))
	for _, line := range lines {
		line.Specifications = append([]int(nil), line.Specifications...)
		c.lines = append(c.lines, line)
	}
	return nil
}

func (c *CreateOrderCommand) setClaimedPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.MinorUnits(), 0, "unbounded")
	}
	c.claimedPrice = price
	return nil
}
