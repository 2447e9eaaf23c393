package menu

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish constructor")

// Option is one selectable choice inside a specification group.
type Option struct {
	name  string
	delta kernel.Money
}

// NewOption builds an option. Deltas may be negative (e.g. "no topping, -1.00").
func NewOption(name string, delta kernel.Money) (Option, error) {
	if name == "" {
		return Option{}, errs.NewValueIsRequiredError("option name")
	}
	return Option{name: name, delta: delta}, nil
}

func (o Option) Name() string { return o.name }

func (o Option) Delta() kernel.Money { return o.delta }

// SpecificationGroup is an axis of customization (size, spiciness, ...) with an
// ordered list of options.
type SpecificationGroup struct {
	name    string
	options []Option
}

// NewSpecificationGroup requires at least one option.
func NewSpecificationGroup(name string, options []Option) (SpecificationGroup, error) {
	if len(options) == 0 {
		return SpecificationGroup{}, errs.NewValueIsRequiredErrorWithCause(
			"options",
			fmt.Errorf("specification group %q has no options", name),
		)
	}
	return SpecificationGroup{name: name, options: append([]Option(nil), options...)}, nil
}

func (g SpecificationGroup) Name() string { return g.name }

func (g SpecificationGroup) Options() []Option { return append([]Option(nil), g.options...) }

// Option returns the option at index and whether the index is in bounds.
func (g SpecificationGroup) Option(index int) (Option, bool) {
	if index < 0 || index >= len(g.options) {
		return Option{}, false
	}
	return g.options[index], true
}

func (g SpecificationGroup) Len() int { return len(g.options) }

// Dish is a catalog entry as observed when an order is composed.
type Dish struct {
	id             kernel.UUID
	restaurantID   kernel.UUID
	name           string
	price          kernel.Money
	selling        bool
	specifications []SpecificationGroup
	imageURLs      []string

	guard guard.ConstructorGuard
}

// DishParams groups the catalog fields of a dish.
type DishParams struct {
	ID             kernel.UUID
	RestaurantID   kernel.UUID
	Name           string
	Price          kernel.Money
	Selling        bool
	Specifications []SpecificationGroup
	ImageURLs      []string
}

// NewDish validates identifiers, name and a non-negative base price.
func NewDish(p DishParams) (*Dish, error) {
	var priceErr error
	if p.Price.IsNegative() {
		priceErr = errs.NewValueIsOutOfRangeError("dish price", p.Price.MinorUnits(), 0, "unbounded")
	}
	var nameErr error
	if p.Name == "" {
		nameErr = errs.NewValueIsRequiredError("dish name")
	}
	if err := errors.Join(p.ID.Validate(), p.RestaurantID.Validate(), nameErr, priceErr); err != nil {
		return nil, err
	}

	return &Dish{
		id:             p.ID,
		restaurantID:   p.RestaurantID,
		name:           p.Name,
		price:          p.Price,
		selling:        p.Selling,
		specifications: append([]SpecificationGroup(nil), p.Specifications...),
		imageURLs:      append([]string(nil), p.ImageURLs...),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (d *Dish) Validate() error {
	if d == nil {
		return ErrDishIsNotConstructed
	}
	return d.guard.Validate(ErrDishIsNotConstructed)
}

func (d *Dish) ID() kernel.UUID { return d.id }

func (d *Dish) RestaurantID() kernel.UUID { return d.restaurantID }

func (d *Dish) Name() string { return d.name }

// Price is the base price before option deltas.
func (d *Dish) Price() kernel.Money { return d.price }

// Selling reports whether the dish may currently be ordered.
func (d *Dish) Selling() bool { return d.selling }

func (d *Dish) Specifications() []SpecificationGroup {
	return append([]SpecificationGroup(nil), d.specifications...)
}

func (d *Dish) ImageURLs() []string { return append([]string(nil), d.imageURLs...) }

// CoverImage is the representative image of the dish, or "" when it has none.
func (d *Dish) CoverImage() string {
	if len(d.imageURLs) == 0 {
		return ""
	}
	return d.imageURLs[0]
}

// BelongsTo reports whether the dish is on restaurantID's menu.
func (d *Dish) BelongsTo(restaurantID kernel.UUID) bool {
	return d.restaurantID.IsEqual(restaurantID)
}
