package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetLastStateQueryIsNotConstructed = errors.New(
	"GetLastStateQuery must be created via NewGetLastStateQuery constructor",
)

type GetLastStateQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetLastStateQuery(orderID kernel.UUID) (GetLastStateQuery, error) {
	if orderID.Validate() != nil {
		return GetLastStateQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetLastStateQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLastStateQuery) Validate() error {
	return q.guard.Validate(ErrGetLastStateQueryIsNotConstructed)
}

func (q GetLastStateQuery) OrderID() kernel.UUID { return q.orderID }
