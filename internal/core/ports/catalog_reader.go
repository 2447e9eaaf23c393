package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
)

// RestaurantSummary is the public face of a restaurant shown next to its orders.
type RestaurantSummary struct {
	ID          kernel.UUID
	Name        string
	Email       string
	LogoURL     string
	Description string
	Phone       string
	LicenseURL  string
}

// CatalogReader is the read-only view of restaurants and their menus.
type CatalogReader interface {
	// Tables returns the table labels of a restaurant. An unknown restaurant has none.
	Tables(ctx context.Context, restaurantID kernel.UUID) ([]string, error)

	// Dishes returns the dishes found among ids, keyed by id. Missing ids are absent
	// from the map rather than reported as errors.
	Dishes(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.Dish, error)

	// Restaurant returns the public summary or an errs.ObjectNotFoundError.
	Restaurant(ctx context.Context, id kernel.UUID) (RestaurantSummary, error)
}
