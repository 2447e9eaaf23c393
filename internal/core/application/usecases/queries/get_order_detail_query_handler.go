package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns ObjectNotFound when no order has the requested id.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return OrderDetail{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`,
			COALESCE(c.nickname, ''),
			COALESCE(c.avatar_url, ''),`+restaurantColumns+`
		FROM orders o`+latestState+`
		JOIN restaurants r ON r.id = o.restaurant_id
		LEFT JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderDetail{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetail{}, err
		}
		return OrderDetail{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var o orderRow
	var r restaurantRow
	var nickname, avatarURL string
	targets := append(o.targets(), &nickname, &avatarURL)
	if err = rows.Scan(append(targets, r.targets()...)...); err != nil {
		return OrderDetail{}, err
	}

	fields, err := o.decode()
	if err != nil {
		return OrderDetail{}, err
	}
	restaurant, err := r.summary()
	if err != nil {
		return OrderDetail{}, err
	}

	return OrderDetail{
		ID: fields.id,
		Customer: CustomerSummary{
			ID:        fields.customerID,
			Nickname:  nickname,
			AvatarURL: avatarURL,
		},
		Restaurant: restaurant,
		Table:      o.table,
		Items:      fields.items,
		Price:      fields.price,
		Remark:     o.remark,
		Payment:    o.payment,
		State:      fields.state,
		StateAt:    o.stateAt,
		CreatedAt:  o.createdAt,
	}, nil
}
