package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

type GetOrderDetailQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if orderID.Validate() != nil {
		return GetOrderDetailQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderDetailQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) OrderID() kernel.UUID { return q.orderID }

// OrderDetail is a single order with both parties resolved. A customer without a
// profile row is reported with its id and empty profile fields.
type OrderDetail struct {
	ID         kernel.UUID
	Customer   CustomerSummary
	Restaurant ports.RestaurantSummary
	Table      string
	Items      []OrderLine
	Price      kernel.Money
	Remark     string
	Payment    string
	State      order.State
	StateAt    time.Time
	CreatedAt  time.Time
}
