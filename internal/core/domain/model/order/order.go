package order

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// DefaultPaymentMethod is stamped on paid orders when the payer names none.
const DefaultPaymentMethod = "DreamPay"

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrNotOwner is the reason carried by Unauthorized transition errors.
	ErrNotOwner = errors.New("only the owning party may perform this transition")
)

// Order is the aggregate root of the ordering core: the priced snapshot of what was
// ordered plus the transition log governing it.
//
// Invariants:
//   - price equals the sum of item totals when the order is created; it is stored and
//     never recomputed
//   - the history starts with a Created record and only grows
//   - payment is set once, by the Paid transition
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	table        string
	price        kernel.Money
	remark       string
	items        []LineItem
	payment      string
	createdAt    time.Time

	history History
	// persisted is the number of history records already in storage.
	persisted int

	isConstructed bool
}

// Params are the snapshot fields shared by NewOrder and RestoreOrder.
type Params struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Table        string
	Remark       string
	Items        []LineItem
	CreatedAt    time.Time
}

// NewOrder creates an order in Created state. The total is computed from items.
func NewOrder(p Params) (*Order, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var total kernel.Money
	for _, item := range p.Items {
		sum, err := total.Add(item.Total())
		if err != nil {
			return nil, err
		}
		total = sum
	}

	created, err := NewStateRecord(Created, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	history, err := NewHistory(created)
	if err != nil {
		return nil, err
	}

	return p.build(total, "", history, 0), nil
}

// RestoreOrder rebuilds a stored order. price and payment are taken as stored; every
// record of history counts as persisted.
func RestoreOrder(p Params, price kernel.Money, payment string, history History) (*Order, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if history.Len() == 0 {
		return nil, ErrHistoryIsEmpty
	}
	if price.IsNegative() {
		return nil, errs.NewValueIsInvalidError("order price")
	}
	return p.build(price, payment, history, history.Len()), nil
}

func (p Params) validate() error {
	var tableErr, itemsErr, timeErr error
	if p.Table == "" {
		tableErr = errs.NewValueIsRequiredError("table")
	}
	if len(p.Items) == 0 {
		itemsErr = errs.NewValueIsRequiredError("items")
	}
	if p.CreatedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("created at")
	}
	return errors.Join(
		p.ID.Validate(),
		p.CustomerID.Validate(),
		p.RestaurantID.Validate(),
		tableErr,
		itemsErr,
		timeErr,
	)
}

func (p Params) build(price kernel.Money, payment string, history History, persisted int) *Order {
	return &Order{
		id:            p.ID,
		customerID:    p.CustomerID,
		restaurantID:  p.RestaurantID,
		table:         p.Table,
		price:         price,
		remark:        p.Remark,
		items:         append([]LineItem(nil), p.Items...),
		payment:       payment,
		createdAt:     p.CreatedAt,
		history:       history,
		persisted:     persisted,
		isConstructed: true,
	}
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) CustomerID() kernel.UUID { return o.customerID }

func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }

func (o *Order) Table() string { return o.table }

// Price is the authoritative total of the snapshot.
func (o *Order) Price() kernel.Money { return o.price }

func (o *Order) Remark() string { return o.remark }

func (o *Order) Items() []LineItem { return append([]LineItem(nil), o.items...) }

// Payment is the payment method tag, empty until the order is paid.
func (o *Order) Payment() string { return o.payment }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

func (o *Order) History() History { return o.history }

// State is the state of the most recent record.
func (o *Order) State() State {
	current, _ := o.history.Current()
	return current.State()
}

// NewRecords returns the records appended since the order was created or restored
// and not yet marked persisted.
func (o *Order) NewRecords() []StateRecord {
	return o.history.Records()[o.persisted:]
}

// MarkRecordsPersisted is called by repositories once NewRecords are stored.
func (o *Order) MarkRecordsPersisted() {
	o.persisted = o.history.Len()
}

// Transition moves the order to next on behalf of actor. Paying through Transition
// stamps DefaultPaymentMethod; use Pay to name the method.
func (o *Order) Transition(actor Actor, next State, at time.Time) error {
	return o.transition(actor, next, at, DefaultPaymentMethod)
}

// Pay moves a Created order to Paid and records method (DefaultPaymentMethod if empty).
func (o *Order) Pay(actor Actor, method string, at time.Time) error {
	if method == "" {
		method = DefaultPaymentMethod
	}
	return o.transition(actor, Paid, at, method)
}

// transition checks, in order: that next is reachable by anyone, that actor owns the
// order in the required role, and that next follows the current state.
func (o *Order) transition(actor Actor, next State, at time.Time, method string) error {
	current := o.State()

	role, ok := RequiredRole(next)
	if !ok {
		return errs.NewTransitionIsInvalidError(current.String(), next.String())
	}

	if err := o.checkOwner(actor, role); err != nil {
		return err
	}

	if !current.CanTransitionTo(next) {
		return errs.NewTransitionIsInvalidError(current.String(), next.String())
	}

	// A clock behind the last record must not make the order unmovable.
	if last, ok := o.history.Current(); ok && at.Before(last.Time()) {
		at = last.Time()
	}

	record, err := NewStateRecord(next, at)
	if err != nil {
		return err
	}
	history, err := o.history.Append(record)
	if err != nil {
		return err
	}

	o.history = history
	if next == Paid {
		o.payment = method
	}
	return nil
}

func (o *Order) checkOwner(actor Actor, role Role) error {
	owner := o.restaurantID
	if role == RoleCustomer {
		owner = o.customerID
	}
	if actor.Role() != role || !actor.ID().IsEqual(owner) {
		return errs.NewUnauthorizedErrorWithCause("order", o.id.String(), actor.String(), ErrNotOwner)
	}
	return nil
}
