package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetStateCountsQueryHandler struct {
	db *gorm.DB
}

func NewGetStateCountsQueryHandler(db *gorm.DB) GetStateCountsQueryHandler {
	return GetStateCountsQueryHandler{db: db}
}

func (h GetStateCountsQueryHandler) Handle(ctx context.Context, query GetStateCountsQuery) (StateCounts, error) {
	if err := query.Validate(); err != nil {
		return StateCounts{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.state,
			COUNT(*)
		FROM order_states s
		JOIN orders o ON o.id = s.order_id
		WHERE o.restaurant_id = ?
			AND s.recorded_at >= ?
			AND s.recorded_at < ?
		GROUP BY s.state
	`, query.RestaurantID().Bytes(), query.From(), query.To()).Rows()
	if err != nil {
		return StateCounts{}, err
	}
	defer rows.Close()

	var counts StateCounts
	for rows.Next() {
		var state string
		var n int64
		if err = rows.Scan(&state, &n); err != nil {
			return StateCounts{}, err
		}
		switch order.State(state) {
		case order.Created:
			counts.Created = n
		case order.Paid:
			counts.Paid = n
		case order.Accepted:
			counts.Accepted = n
		case order.Cancelled:
			counts.Cancelled = n
		case order.Completed:
			counts.Completed = n
		}
	}

	if err = rows.Err(); err != nil {
		return StateCounts{}, err
	}

	return counts, nil
}
