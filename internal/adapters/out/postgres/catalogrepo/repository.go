package catalogrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/menu"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogReader using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Tables returns the labels ordered alphabetically.
func (r *GormCatalogRepository) Tables(ctx context.Context, restaurantID kernel.UUID) ([]string, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	labels := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&TableDTO{}).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("label").
		Pluck("label", &labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}

func (r *GormCatalogRepository) Dishes(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*menu.Dish, error) {
	dishes := make(map[kernel.UUID]*menu.Dish, len(ids))
	if len(ids) == 0 {
		return dishes, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		dish, err := dishToDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes[dish.ID()] = dish
	}
	return dishes, nil
}

func (r *GormCatalogRepository) Restaurant(ctx context.Context, id kernel.UUID) (ports.RestaurantSummary, error) {
	if err := id.Validate(); err != nil {
		return ports.RestaurantSummary{}, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RestaurantSummary{}, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return ports.RestaurantSummary{}, err
	}
	return restaurantToSummary(dto)
}
