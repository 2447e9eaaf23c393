// Package catalogrepo reads restaurants, their tables and their dishes. The catalog
// is maintained elsewhere; this package never writes it.
package catalogrepo

import (
	"encoding/json"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RestaurantDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Email       string    `gorm:"not null;default:''"`
	LogoURL     string    `gorm:"not null;default:''"`
	Description string    `gorm:"not null;default:''"`
	Phone       string    `gorm:"not null;default:''"`
	LicenseURL  string    `gorm:"not null;default:''"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// TableDTO is one physical table of a restaurant, identified by its label.
type TableDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_restaurant_table"`
	Label        string    `gorm:"not null;uniqueIndex:idx_restaurant_table"`
}

func (TableDTO) TableName() string {
	return "restaurant_tables"
}

// DishDTO keeps specification groups and image urls as jsonb arrays.
type DishDTO struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RestaurantID   uuid.UUID      `gorm:"type:uuid;index;not null"`
	Name           string         `gorm:"not null"`
	Price          int64          `gorm:"not null"`
	Selling        bool           `gorm:"not null"`
	Specifications datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	ImageURLs      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

// SpecificationGroupDTO is the json shape of one group in dishes.specifications.
type SpecificationGroupDTO struct {
	Name    string      `json:"name"`
	Options []OptionDTO `json:"options"`
}

type OptionDTO struct {
	Name  string `json:"name"`
	Delta int64  `json:"delta"`
}

// DishFromDomain builds the row for a dish. Used to seed catalogs in tests and
// fixtures.
func DishFromDomain(d *menu.Dish) (DishDTO, error) {
	groups := make([]SpecificationGroupDTO, 0, len(d.Specifications()))
	for _, g := range d.Specifications() {
		options := make([]OptionDTO, 0, g.Len())
		for _, o := range g.Options() {
			options = append(options, OptionDTO{Name: o.Name(), Delta: o.Delta().MinorUnits()})
		}
		groups = append(groups, SpecificationGroupDTO{Name: g.Name(), Options: options})
	}
	specs, err := json.Marshal(groups)
	if err != nil {
		return DishDTO{}, err
	}

	imageURLs := d.ImageURLs()
	if imageURLs == nil {
		imageURLs = []string{}
	}
	images, err := json.Marshal(imageURLs)
	if err != nil {
		return DishDTO{}, err
	}

	return DishDTO{
		ID:             d.ID().Bytes(),
		RestaurantID:   d.RestaurantID().Bytes(),
		Name:           d.Name(),
		Price:          d.Price().MinorUnits(),
		Selling:        d.Selling(),
		Specifications: datatypes.JSON(specs),
		ImageURLs:      datatypes.JSON(images),
	}, nil
}

func dishToDomain(dto DishDTO) (*menu.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var groupDTOs []SpecificationGroupDTO
	if len(dto.Specifications) > 0 {
		if err = json.Unmarshal(dto.Specifications, &groupDTOs); err != nil {
			return nil, err
		}
	}
	groups := make([]menu.SpecificationGroup, 0, len(groupDTOs))
	for _, g := range groupDTOs {
		options := make([]menu.Option, 0, len(g.Options))
		for _, o := range g.Options {
			option, optionErr := menu.NewOption(o.Name, kernel.Money(o.Delta))
			if optionErr != nil {
				return nil, optionErr
			}
			options = append(options, option)
		}
		group, groupErr := menu.NewSpecificationGroup(g.Name, options)
		if groupErr != nil {
			return nil, groupErr
		}
		groups = append(groups, group)
	}

	var images []string
	if len(dto.ImageURLs) > 0 {
		if err = json.Unmarshal(dto.ImageURLs, &images); err != nil {
			return nil, err
		}
	}

	return menu.NewDish(menu.DishParams{
		ID:             id,
		RestaurantID:   restaurantID,
		Name:           dto.Name,
		Price:          kernel.Money(dto.Price),
		Selling:        dto.Selling,
		Specifications: groups,
		ImageURLs:      images,
	})
}

func restaurantToSummary(dto RestaurantDTO) (ports.RestaurantSummary, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.RestaurantSummary{}, err
	}
	return ports.RestaurantSummary{
		ID:          id,
		Name:        dto.Name,
		Email:       dto.Email,
		LogoURL:     dto.LogoURL,
		Description: dto.Description,
		Phone:       dto.Phone,
		LicenseURL:  dto.LicenseURL,
	}, nil
}
