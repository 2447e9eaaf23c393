package queries

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetStateCountsQueryIsNotConstructed = errors.New(
	"GetStateCountsQuery must be created via NewGetStateCountsQuery constructor",
)

// GetStateCountsQuery counts the state records of a restaurant's orders that were
// recorded in the half-open window [from, to).
type GetStateCountsQuery struct {
	restaurantID kernel.UUID
	from, to     time.Time
	guard        guard.ConstructorGuard
}

func NewGetStateCountsQuery(restaurantID kernel.UUID, from, to time.Time) (GetStateCountsQuery, error) {
	var idErr, windowErr error
	if restaurantID.Validate() != nil {
		idErr = errs.NewValueIsRequiredError("restaurant id")
	}
	if from.IsZero() || to.IsZero() {
		windowErr = errs.NewValueIsRequiredError("window")
	} else if !from.Before(to) {
		windowErr = errs.NewValueIsInvalidErrorWithCause("window",
			fmt.Errorf("from %s is not before to %s", from.Format(time.RFC3339), to.Format(time.RFC3339)))
	}
	if err := errors.Join(idErr, windowErr); err != nil {
		return GetStateCountsQuery{}, err
	}
	return GetStateCountsQuery{
		restaurantID: restaurantID,
		from:         from,
		to:           to,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetStateCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStateCountsQueryIsNotConstructed)
}

func (q GetStateCountsQuery) RestaurantID() kernel.UUID { return q.restaurantID }

func (q GetStateCountsQuery) From() time.Time { return q.from }

func (q GetStateCountsQuery) To() time.Time { return q.to }

// StateCounts has one counter per known state; states with no records are zero.
type StateCounts struct {
	Created   int64
	Paid      int64
	Accepted  int64
	Cancelled int64
	Completed int64
}
