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

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery pages through a customer's orders, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	page       Page
	guard      guard.ConstructorGuard
}

func NewGetCustomerOrdersQuery(customerID kernel.UUID, page, pageSize int) (GetCustomerOrdersQuery, error) {
	var idErr error
	if customerID.Validate() != nil {
		idErr = errs.NewValueIsRequiredError("customer id")
	}
	p, pageErr := NewPage(page, pageSize)
	if err := errors.Join(idErr, pageErr); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		page:       p,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

func (q GetCustomerOrdersQuery) Page() Page { return q.page }

// CustomerOrder is one entry of a customer's order list.
type CustomerOrder struct {
	ID         kernel.UUID
	Restaurant ports.RestaurantSummary
	Customer   CustomerRef
	Table      string
	Items      []OrderLine
	Price      kernel.Money
	Remark     string
	Payment    string
	State      order.State
	CreatedAt  time.Time
}
