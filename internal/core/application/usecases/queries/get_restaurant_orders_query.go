package queries

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrGetRestaurantOrdersQueryIsNotConstructed = errors.New(
	"GetRestaurantOrdersQuery must be created via NewGetRestaurantOrdersQuery constructor",
)

// GetRestaurantOrdersQuery pages through a restaurant's orders, newest first,
// optionally narrowed to some latest states and a keyword.
//
// An empty states list applies no state filter. The keyword is matched
// case-insensitively as a substring of the remark, the table label or the dish
// snapshot; blank keywords are ignored.
type GetRestaurantOrdersQuery struct {
	restaurantID kernel.UUID
	page         Page
	states       []order.State
	keyword      string
	guard        guard.ConstructorGuard
}

func NewGetRestaurantOrdersQuery(
	restaurantID kernel.UUID,
	page, pageSize int,
	states []string,
	keyword string,
) (GetRestaurantOrdersQuery, error) {
	var idErr error
	if restaurantID.Validate() != nil {
		idErr = errs.NewValueIsRequiredError("restaurant id")
	}
	p, pageErr := NewPage(page, pageSize)

	parsed := make([]order.State, 0, len(states))
	var stateErrs []error
	for _, s := range states {
		state, err := order.ParseState(s)
		if err != nil {
			stateErrs = append(stateErrs, err)
			continue
		}
		parsed = append(parsed, state)
	}

	if err := errors.Join(idErr, pageErr, errors.Join(stateErrs...)); err != nil {
		return GetRestaurantOrdersQuery{}, err
	}
	return GetRestaurantOrdersQuery{
		restaurantID: restaurantID,
		page:         p,
		states:       parsed,
		keyword:      strings.TrimSpace(keyword),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantOrdersQueryIsNotConstructed)
}

func (q GetRestaurantOrdersQuery) RestaurantID() kernel.UUID { return q.restaurantID }

func (q GetRestaurantOrdersQuery) Page() Page { return q.page }

func (q GetRestaurantOrdersQuery) States() []order.State {
	out := make([]order.State, len(q.states))
	copy(out, q.states)
	return out
}

func (q GetRestaurantOrdersQuery) Keyword() string { return q.keyword }

// RestaurantOrder is one entry of a restaurant's order list, enriched with the
// restaurant's own summary.
type RestaurantOrder struct {
	ID         kernel.UUID
	Restaurant ports.RestaurantSummary
	Customer   CustomerRef
	Table      string
	Items      []OrderLine
	Price      kernel.Money
	Remark     string
	Payment    string
	State      order.State
	StateAt    time.Time
	CreatedAt  time.Time
}

type GetRestaurantOrdersQueryResponse struct {
	Orders    []RestaurantOrder
	PageCount int
}
