package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID, restaurantID, dishID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	specs := []int{1, 0}
	lines := []services.OrderLine{{DishID: dishID, Specifications: specs, Count: 2}}

	cmd, err := commands.NewCreateOrderCommand(customerID, restaurantID, "A3", lines, "no onion", 5000)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.NoError(t, cmd.OrderID().Validate())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, restaurantID, cmd.RestaurantID())
	assert.Equal(t, "A3", cmd.Table())
	assert.Equal(t, "no onion", cmd.Remark())
	assert.Equal(t, kernel.Money(5000), cmd.ClaimedPrice())
	assert.Equal(t, lines, cmd.Lines())

	specs[0] = 7
	assert.Equal(t, 1, cmd.Lines()[0].Specifications[0], "command keeps its own copy")
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.NewUUID(), "", nil, "", -1)

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValidationFailed)
	assert.Contains(t, err.Error(), "table")
	assert.Contains(t, err.Error(), "items")
	assert.Contains(t, err.Error(), "price")
}

func TestNewCreateOrderCommand_InvalidLines(t *testing.T) {
	lines := []services.OrderLine{
		{DishID: kernel.UUID{}, Count: 1},
		{DishID: kernel.NewUUID(), Count: 0},
	}

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "A3", lines, "", 0)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateOrderCommand_CountLimit(t *testing.T) {
	testCases := map[string]struct {
		count int
		valid bool
	}{
		"at the limit":   {count: order.MaxLineCount, valid: true},
		"past the limit": {count: order.MaxLineCount + 1},
		"huge":           {count: 1 << 62},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			lines := []services.OrderLine{{DishID: kernel.NewUUID(), Count: tc.count}}

			_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "A3", lines, "", 0)

			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			require.ErrorIs(t, err, errs.ErrValidationFailed)
		})
	}
}

func TestCreateOrderCommand_DishIDsAreDistinct(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()
	lines := []services.OrderLine{
		{DishID: a, Specifications: []int{0}, Count: 1},
		{DishID: b, Count: 1},
		{DishID: a, Specifications: []int{1}, Count: 1},
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "A3", lines, "", 0)

	require.NoError(t, err)
	assert.Equal(t, []kernel.UUID{a, b}, cmd.DishIDs())
}

func TestCreateOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
