package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns an empty slice, not nil, when the page holds no orders.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]CustomerOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`,`+restaurantColumns+`
		FROM orders o`+latestState+`
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, query.CustomerID().Bytes(), query.Page().Size, query.Page().Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]CustomerOrder, 0)
	for rows.Next() {
		var o orderRow
		var r restaurantRow
		if err = rows.Scan(append(o.targets(), r.targets()...)...); err != nil {
			return nil, err
		}

		fields, decodeErr := o.decode()
		if decodeErr != nil {
			return nil, decodeErr
		}
		restaurant, summaryErr := r.summary()
		if summaryErr != nil {
			return nil, summaryErr
		}

		orders = append(orders, CustomerOrder{
			ID:         fields.id,
			Restaurant: restaurant,
			Customer:   CustomerRef{ID: fields.customerID},
			Table:      o.table,
			Items:      fields.items,
			Price:      fields.price,
			Remark:     o.remark,
			Payment:    o.payment,
			State:      fields.state,
			CreatedAt:  o.createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
