package services

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// Reasons a cart is rejected. Each one travels as the cause of a categorized error
// from internal/pkg/errs, so callers may match either the reason or the category.
var (
	ErrInvalidTable               = errors.New("table does not belong to the restaurant")
	ErrDishNotFound               = errors.New("dish does not exist")
	ErrDishUnavailable            = errors.New("dish is not on sale")
	ErrDishRestaurantMismatch     = errors.New("dish belongs to another restaurant")
	ErrSpecificationCountMismatch = errors.New("selection count does not match the dish specification groups")
	ErrSpecificationOptionInvalid = errors.New("selected option does not exist")
	ErrPriceMismatch              = errors.New("claimed total does not match the computed total")
)

// OrderLine is one requested line of a cart: a dish, one option index per
// specification group of the dish, and a count.
type OrderLine struct {
	DishID         kernel.UUID
	Specifications []int
	Count          int
}

// CompositionRequest is a cart submission as the customer sent it.
type CompositionRequest struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	Table        string
	Lines        []OrderLine
	Remark       string
	ClaimedPrice kernel.Money
	CreatedAt    time.Time
}

// OrderComposer turns a cart into an order in Created state.
//
// Checks run in this order and stop at the first failure:
//   - the table is one of the restaurant's tables
//   - per line, in request order: the dish exists, is selling and belongs to the
//     restaurant; one selection per specification group, each within the group's options
//   - the sum of unit price times count equals the claimed price exactly
//
// Example usage:
//
//	composer := services.NewOrderComposer()
//	o, err := composer.Compose(req, tables, dishes)
//	if errors.Is(err, services.ErrPriceMismatch) {
//	    // client showed a stale price
//	}
type OrderComposer struct {
	steps []lineStep
}

func NewOrderComposer() OrderComposer {
	return OrderComposer{
		steps: []lineStep{
			resolveDish,
			requireSelling,
			requireSameRestaurant,
			requireSelectionPerGroup,
			applySelections,
		},
	}
}

// pricedLine is the intermediate value each lineStep refines.
type pricedLine struct {
	request     OrderLine
	dish        *menu.Dish
	unitPrice   kernel.Money
	optionNames []string
}

// lineContext is what a step may consult besides the line itself.
type lineContext struct {
	restaurantID kernel.UUID
	dishes       map[kernel.UUID]*menu.Dish
}

type lineStep func(ctx lineContext, line *pricedLine) error

// Compose validates req against the catalog state observed by the caller. tables are
// the restaurant's table labels; dishes holds every catalog entry found for the
// requested ids, absent ids are simply missing from the map.
func (c OrderComposer) Compose(
	req CompositionRequest,
	tables []string,
	dishes map[kernel.UUID]*menu.Dish,
) (*order.Order, error) {
	if !slices.Contains(tables, req.Table) {
		return nil, errs.NewObjectNotFoundErrorWithCause("table", req.Table, ErrInvalidTable)
	}

	steps := c.steps
	if steps == nil {
		steps = NewOrderComposer().steps
	}
	ctx := lineContext{restaurantID: req.RestaurantID, dishes: dishes}

	items := make([]order.LineItem, 0, len(req.Lines))
	var total kernel.Money
	for _, requested := range req.Lines {
		line := &pricedLine{request: requested}
		for _, step := range steps {
			if err := step(ctx, line); err != nil {
				return nil, err
			}
		}

		item, err := order.NewLineItem(
			line.dish.Name(),
			line.optionNames,
			line.unitPrice,
			requested.Count,
			line.dish.CoverImage(),
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if total, err = total.Add(item.Total()); err != nil {
			return nil, err
		}
	}

	if total != req.ClaimedPrice {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%w: claimed %s, computed %s", ErrPriceMismatch, req.ClaimedPrice, total),
		)
	}

	return order.NewOrder(order.Params{
		ID:           req.OrderID,
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		Table:        req.Table,
		Remark:       req.Remark,
		Items:        items,
		CreatedAt:    req.CreatedAt,
	})
}

func resolveDish(ctx lineContext, line *pricedLine) error {
	dish, ok := ctx.dishes[line.request.DishID]
	if !ok || dish.Validate() != nil {
		return errs.NewObjectNotFoundErrorWithCause("dish", line.request.DishID.String(), ErrDishNotFound)
	}
	line.dish = dish
	line.unitPrice = dish.Price()
	return nil
}

func requireSelling(_ lineContext, line *pricedLine) error {
	if !line.dish.Selling() {
		return errs.NewReferenceIsInvalidErrorWithCause("dish", line.dish.ID().String(), ErrDishUnavailable)
	}
	return nil
}

func requireSameRestaurant(ctx lineContext, line *pricedLine) error {
	if !line.dish.BelongsTo(ctx.restaurantID) {
		return errs.NewReferenceIsInvalidErrorWithCause("dish", line.dish.ID().String(), ErrDishRestaurantMismatch)
	}
	return nil
}

func requireSelectionPerGroup(_ lineContext, line *pricedLine) error {
	groups := len(line.dish.Specifications())
	if got := len(line.request.Specifications); got != groups {
		return errs.NewValueIsInvalidErrorWithCause(
			"specifications",
			fmt.Errorf("%w: dish %s has %d groups, got %d selections",
				ErrSpecificationCountMismatch, line.dish.ID(), groups, got),
		)
	}
	return nil
}

// applySelections adds each chosen delta to the unit price and collects option names
// in group order.
func applySelections(_ lineContext, line *pricedLine) error {
	for i, group := range line.dish.Specifications() {
		index := line.request.Specifications[i]
		option, ok := group.Option(index)
		if !ok {
			return errs.NewValueIsOutOfRangeErrorWithCause(
				group.Name(), index, 0, group.Len()-1, ErrSpecificationOptionInvalid,
			)
		}
		price, err := line.unitPrice.Add(option.Delta())
		if err != nil {
			return err
		}
		line.unitPrice = price
		line.optionNames = append(line.optionNames, option.Name())
	}
	return nil
}
