// Package orderrepo persists order aggregates: one row per order holding the
// immutable snapshot, plus an append-only table of state records.
package orderrepo

import (
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO is the orders row. Dishes holds the line snapshot as jsonb.
type OrderDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID      `gorm:"type:uuid;index;not null"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;index;not null"`
	TableLabel   string         `gorm:"not null"`
	Price        int64          `gorm:"not null"`
	Remark       string         `gorm:"not null;default:''"`
	Dishes       datatypes.JSON `gorm:"type:jsonb;not null"`
	Payment      string         `gorm:"not null;default:''"`
	CreatedAt    time.Time      `gorm:"not null;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderStateDTO is one row of the transition log. The serial id breaks ties between
// records with the same timestamp.
type OrderStateDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index;not null"`
	State      string    `gorm:"not null;index"`
	RecordedAt time.Time `gorm:"not null;index"`

	Order OrderDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderStateDTO) TableName() string {
	return "order_states"
}

// LineItemDTO is the json shape of one snapshot line inside orders.dishes.
type LineItemDTO struct {
	Name           string `json:"name"`
	Specifications string `json:"specifications"`
	Price          int64  `json:"price"`
	Count          int    `json:"count"`
	ImageURL       string `json:"image_url"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	lines := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		lines = append(lines, LineItemDTO{
			Name:           item.Name(),
			Specifications: item.Specifications(),
			Price:          item.Price().MinorUnits(),
			Count:          item.Count(),
			ImageURL:       item.ImageURL(),
		})
	}
	dishes, err := json.Marshal(lines)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		TableLabel:   aggregate.Table(),
		Price:        aggregate.Price().MinorUnits(),
		Remark:       aggregate.Remark(),
		Dishes:       datatypes.JSON(dishes),
		Payment:      aggregate.Payment(),
		CreatedAt:    aggregate.CreatedAt(),
	}, nil
}

func statesFromRecords(orderID kernel.UUID, records []order.StateRecord) []OrderStateDTO {
	dtos := make([]OrderStateDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, OrderStateDTO{
			OrderID:    orderID.Bytes(),
			State:      r.State().String(),
			RecordedAt: r.Time(),
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate from its row and its records, oldest first.
func toDomain(dto OrderDTO, states []OrderStateDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var lines []LineItemDTO
	if err = json.Unmarshal(dto.Dishes, &lines); err != nil {
		return nil, err
	}
	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		item, itemErr := order.RestoreLineItem(
			line.Name, line.Specifications, kernel.Money(line.Price), line.Count, line.ImageURL,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	records := make([]order.StateRecord, 0, len(states))
	for _, s := range states {
		state, stateErr := order.ParseState(s.State)
		if stateErr != nil {
			return nil, stateErr
		}
		record, recordErr := order.NewStateRecord(state, s.RecordedAt)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}
	history, err := order.NewHistory(records...)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Params{
		ID:           id,
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Table:        dto.TableLabel,
		Remark:       dto.Remark,
		Items:        items,
		CreatedAt:    dto.CreatedAt,
	}, kernel.Money(dto.Price), dto.Payment, history)
}
