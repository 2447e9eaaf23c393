package postgres

import (
	"ordering/internal/adapters/out/postgres/catalogrepo"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service reads or writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.TableDTO{},
		&catalogrepo.DishDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderStateDTO{},
	)
}
