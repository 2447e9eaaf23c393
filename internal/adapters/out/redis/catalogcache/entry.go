package catalogcache

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/ports"
)

// dishEntry is the cached json form of a dish.
type dishEntry struct {
	ID             kernel.UUID  `json:"id"`
	RestaurantID   kernel.UUID  `json:"restaurant_id"`
	Name           string       `json:"name"`
	Price          int64        `json:"price"`
	Selling        bool         `json:"selling"`
	Specifications []groupEntry `json:"specifications"`
	ImageURLs      []string     `json:"image_urls"`
}

type groupEntry struct {
	Name    string        `json:"name"`
	Options []optionEntry `json:"options"`
}

type optionEntry struct {
	Name  string `json:"name"`
	Delta int64  `json:"delta"`
}

type restaurantEntry struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	LogoURL     string      `json:"logo_url"`
	Description string      `json:"description"`
	Phone       string      `json:"phone"`
	LicenseURL  string      `json:"license_url"`
}

func newDishEntry(d *menu.Dish) dishEntry {
	groups := make([]groupEntry, 0, len(d.Specifications()))
	for _, g := range d.Specifications() {
		options := make([]optionEntry, 0, g.Len())
		for _, o := range g.Options() {
			options = append(options, optionEntry{Name: o.Name(), Delta: o.Delta().MinorUnits()})
		}
		groups = append(groups, groupEntry{Name: g.Name(), Options: options})
	}
	return dishEntry{
		ID:             d.ID(),
		RestaurantID:   d.RestaurantID(),
		Name:           d.Name(),
		Price:          d.Price().MinorUnits(),
		Selling:        d.Selling(),
		Specifications: groups,
		ImageURLs:      d.ImageURLs(),
	}
}

func (e dishEntry) dish() (*menu.Dish, error) {
	groups := make([]menu.SpecificationGroup, 0, len(e.Specifications))
	for _, g := range e.Specifications {
		options := make([]menu.Option, 0, len(g.Options))
		for _, o := range g.Options {
			option, err := menu.NewOption(o.Name, kernel.Money(o.Delta))
			if err != nil {
				return nil, err
			}
			options = append(options, option)
		}
		group, err := menu.NewSpecificationGroup(g.Name, options)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return menu.NewDish(menu.DishParams{
		ID:             e.ID,
		RestaurantID:   e.RestaurantID,
		Name:           e.Name,
		Price:          kernel.Money(e.Price),
		Selling:        e.Selling,
		Specifications: groups,
		ImageURLs:      e.ImageURLs,
	})
}

func newRestaurantEntry(s ports.RestaurantSummary) restaurantEntry {
	return restaurantEntry{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		LogoURL:     s.LogoURL,
		Description: s.Description,
		Phone:       s.Phone,
		LicenseURL:  s.LicenseURL,
	}
}

func (e restaurantEntry) summary() ports.RestaurantSummary {
	return ports.RestaurantSummary{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		LogoURL:     e.LogoURL,
		Description: e.Description,
		Phone:       e.Phone,
		LicenseURL:  e.LicenseURL,
	}
}
