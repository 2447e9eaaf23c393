package order_test

import (
	"math"
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	dumplings, err := order.NewLineItem("Dumplings", []string{"large", "spicy"}, 2500, 2, "dumplings.png")
	require.NoError(t, err)
	tea, err := order.NewLineItem("Tea", nil, 300, 1, "")
	require.NoError(t, err)

	o, err := order.NewOrder(order.Params{
		ID:           kernel.NewUUID(),
		CustomerID:   kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		Table:        "A3",
		Remark:       "no onion",
		Items:        []order.LineItem{dumplings, tea},
		CreatedAt:    t0,
	})
	require.NoError(t, err)
	return o
}

func TestNewLineItem(t *testing.T) {
	item, err := order.NewLineItem("Dumplings", []string{"large", "spicy"}, 2500, 2, "d.png")

	require.NoError(t, err)
	assert.Equal(t, `large\spicy`, item.Specifications())
	assert.Equal(t, kernel.Money(5000), item.Total())

	_, err = order.NewLineItem("", nil, -1, 0, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line name")
	assert.Contains(t, err.Error(), "line price")
	assert.Contains(t, err.Error(), "line count")
}

func TestNewLineItem_CountAndTotalBounds(t *testing.T) {
	item, err := order.NewLineItem("Tea", nil, 300, order.MaxLineCount, "")
	require.NoError(t, err)
	assert.Equal(t, kernel.Money(300*order.MaxLineCount), item.Total())

	_, err = order.NewLineItem("Tea", nil, 300, order.MaxLineCount+1, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = order.NewLineItem("Tea", nil, 4, 1<<62, "")
	require.ErrorIs(t, err, errs.ErrValidationFailed)

	_, err = order.NewLineItem("Caviar", nil, kernel.Money(math.MaxInt64/2), 3, "")
	require.ErrorIs(t, err, kernel.ErrMoneyOverflow)
	require.ErrorIs(t, err, errs.ErrValidationFailed)
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total and starts in created", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.Money(5300), o.Price())
		assert.Equal(t, order.Created, o.State())
		assert.Empty(t, o.Payment())
		require.Len(t, o.NewRecords(), 1)
		assert.Equal(t, t0, o.NewRecords()[0].Time())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := order.NewOrder(order.Params{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "table")
		assert.Contains(t, err.Error(), "items")
		assert.Contains(t, err.Error(), "created at")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder_KeepsStoredPrice(t *testing.T) {
	item, _ := order.NewLineItem("Dumplings", nil, 2500, 2, "")
	created, _ := order.NewStateRecord(order.Created, t0)
	history, _ := order.NewHistory(created)

	o, err := order.RestoreOrder(order.Params{
		ID:           kernel.NewUUID(),
		CustomerID:   kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		Table:        "B1",
		Items:        []order.LineItem{item},
		CreatedAt:    t0,
	}, 4000, "", history)

	require.NoError(t, err)
	assert.Equal(t, kernel.Money(4000), o.Price())
	assert.Empty(t, o.NewRecords())

	_, err = order.RestoreOrder(order.Params{
		ID: kernel.NewUUID(), CustomerID: kernel.NewUUID(), RestaurantID: kernel.NewUUID(),
		Table: "B1", Items: []order.LineItem{item}, CreatedAt: t0,
	}, 4000, "", order.History{})
	require.ErrorIs(t, err, order.ErrHistoryIsEmpty)
}

func TestOrder_HappyPath(t *testing.T) {
	o := newTestOrder(t)
	customer := order.Customer(o.CustomerID())
	restaurant := order.Restaurant(o.RestaurantID())
	o.MarkRecordsPersisted()

	require.NoError(t, o.Pay(customer, "WeChatPay", t0.Add(time.Minute)))
	assert.Equal(t, order.Paid, o.State())
	assert.Equal(t, "WeChatPay", o.Payment())

	require.NoError(t, o.Transition(restaurant, order.Accepted, t0.Add(2*time.Minute)))
	require.NoError(t, o.Transition(restaurant, order.Completed, t0.Add(3*time.Minute)))

	assert.Equal(t, order.Completed, o.State())
	records := o.History().Records()
	require.Len(t, records, 4)
	assert.Equal(t, order.Created, records[0].State())
	assert.Equal(t, order.Paid, records[1].State())
	assert.Equal(t, order.Accepted, records[2].State())
	assert.Equal(t, order.Completed, records[3].State())

	newRecords := o.NewRecords()
	require.Len(t, newRecords, 3)
	assert.Equal(t, order.Paid, newRecords[0].State())
}

func TestNewOrder_RejectsOverflowingTotal(t *testing.T) {
	big, err := order.NewLineItem("Caviar", nil, kernel.Money(math.MaxInt64/2), 1, "")
	require.NoError(t, err)

	_, err = order.NewOrder(order.Params{
		ID:           kernel.NewUUID(),
		CustomerID:   kernel.NewUUID(),
		RestaurantID: kernel.NewUUID(),
		Table:        "A3",
		Items:        []order.LineItem{big, big, big},
		CreatedAt:    t0,
	})

	require.ErrorIs(t, err, kernel.ErrMoneyOverflow)
}

func TestOrder_TransitionWithLaggingClockKeepsHistoryOrdered(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.Pay(order.Customer(o.CustomerID()), "", t0.Add(-time.Minute)))

	assert.Equal(t, order.Paid, o.State())
	current, ok := o.History().Current()
	require.True(t, ok)
	assert.Equal(t, t0, current.Time())
}

func TestOrder_PayWithoutMethodUsesDefault(t *testing.T) {
	o := newTestOrder(t)

	require.NoError(t, o.Pay(order.Customer(o.CustomerID()), "", t0.Add(time.Minute)))
	assert.Equal(t, order.DefaultPaymentMethod, o.Payment())
}

func TestOrder_CancelFromPaidIsTerminal(t *testing.T) {
	o := newTestOrder(t)
	restaurant := order.Restaurant(o.RestaurantID())
	require.NoError(t, o.Transition(order.Customer(o.CustomerID()), order.Paid, t0.Add(time.Minute)))

	require.NoError(t, o.Transition(restaurant, order.Cancelled, t0.Add(2*time.Minute)))
	assert.Equal(t, order.Cancelled, o.State())

	err := o.Transition(restaurant, order.Completed, t0.Add(3*time.Minute))

	var transitionErr *errs.TransitionIsInvalidError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "cancelled", transitionErr.From)
	assert.Equal(t, "completed", transitionErr.To)
	assert.Equal(t, 3, o.History().Len())
}

func TestOrder_TransitionRejections(t *testing.T) {
	testCases := []struct {
		name     string
		prepare  func(o *order.Order)
		actor    func(o *order.Order) order.Actor
		target   order.State
		sentinel error
	}{
		{
			name:     "skip from created to accepted",
			actor:    func(o *order.Order) order.Actor { return order.Restaurant(o.RestaurantID()) },
			target:   order.Accepted,
			sentinel: errs.ErrTransitionIsInvalid,
		},
		{
			name: "cancel after accepted",
			prepare: func(o *order.Order) {
				_ = o.Transition(order.Customer(o.CustomerID()), order.Paid, t0.Add(time.Minute))
				_ = o.Transition(order.Restaurant(o.RestaurantID()), order.Accepted, t0.Add(2*time.Minute))
			},
			actor:    func(o *order.Order) order.Actor { return order.Restaurant(o.RestaurantID()) },
			target:   order.Cancelled,
			sentinel: errs.ErrTransitionIsInvalid,
		},
		{
			name:     "created is never a target",
			actor:    func(o *order.Order) order.Actor { return order.Customer(o.CustomerID()) },
			target:   order.Created,
			sentinel: errs.ErrTransitionIsInvalid,
		},
		{
			name:     "another customer pays",
			actor:    func(_ *order.Order) order.Actor { return order.Customer(kernel.NewUUID()) },
			target:   order.Paid,
			sentinel: order.ErrNotOwner,
		},
		{
			name:     "restaurant pays",
			actor:    func(o *order.Order) order.Actor { return order.Restaurant(o.RestaurantID()) },
			target:   order.Paid,
			sentinel: errs.ErrUnauthorized,
		},
		{
			name: "customer accepts",
			prepare: func(o *order.Order) {
				_ = o.Transition(order.Customer(o.CustomerID()), order.Paid, t0.Add(time.Minute))
			},
			actor:    func(o *order.Order) order.Actor { return order.Customer(o.CustomerID()) },
			target:   order.Accepted,
			sentinel: errs.ErrUnauthorized,
		},
		{
			name: "another restaurant cancels",
			prepare: func(o *order.Order) {
				_ = o.Transition(order.Customer(o.CustomerID()), order.Paid, t0.Add(time.Minute))
			},
			actor:    func(_ *order.Order) order.Actor { return order.Restaurant(kernel.NewUUID()) },
			target:   order.Cancelled,
			sentinel: errs.ErrUnauthorized,
		},
		{
			name: "pay twice",
			prepare: func(o *order.Order) {
				_ = o.Transition(order.Customer(o.CustomerID()), order.Paid, t0.Add(time.Minute))
			},
			actor:    func(o *order.Order) order.Actor { return order.Customer(o.CustomerID()) },
			target:   order.Paid,
			sentinel: errs.ErrTransitionIsInvalid,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOrder(t)
			if tc.prepare != nil {
				tc.prepare(o)
			}
			before := o.History().Records()

			err := o.Transition(tc.actor(o), tc.target, t0.Add(time.Hour))

			require.ErrorIs(t, err, tc.sentinel)
			assert.Equal(t, before, o.History().Records(), "history must be unchanged")
		})
	}
}

func TestNewActor(t *testing.T) {
	id := kernel.NewUUID()

	actor, err := order.NewActor(order.RoleCustomer, id)
	require.NoError(t, err)
	assert.Equal(t, order.RoleCustomer, actor.Role())
	assert.True(t, id.IsEqual(actor.ID()))

	_, err = order.NewActor("waiter", id)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewActor(order.RoleRestaurant, kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
