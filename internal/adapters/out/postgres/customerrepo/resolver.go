package customerrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerResolver implements ports.CustomerResolver. The login code is the
// customer's open id at the identity provider.
type GormCustomerResolver struct {
	db *gorm.DB
}

func NewGormCustomerResolver(db *gorm.DB) *GormCustomerResolver {
	return &GormCustomerResolver{db: db}
}

// Resolve returns the id of the customer with the open id, inserting one when none
// exists. Concurrent first logins with the same code converge on one row.
func (r *GormCustomerResolver) Resolve(ctx context.Context, code string) (kernel.UUID, error) {
	if code == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("code")
	}

	db := r.db.WithContext(ctx)

	id, err := r.find(db, code)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.UUID{}, err
	}

	candidate := CustomerDTO{
		ID:        kernel.NewUUID().Bytes(),
		OpenID:    code,
		CreatedAt: time.Now(),
	}
	if err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoNothing: true,
	}).Create(&candidate).Error; err != nil {
		return kernel.UUID{}, err
	}

	return r.find(db, code)
}

func (r *GormCustomerResolver) find(db *gorm.DB, code string) (kernel.UUID, error) {
	var dto CustomerDTO
	if err := db.Where("open_id = ?", code).Take(&dto).Error; err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(dto.ID[:])
}
