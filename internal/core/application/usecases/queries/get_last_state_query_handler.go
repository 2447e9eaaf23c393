package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetLastStateQueryHandler struct {
	db *gorm.DB
}

func NewGetLastStateQueryHandler(db *gorm.DB) GetLastStateQueryHandler {
	return GetLastStateQueryHandler{db: db}
}

// Handle reads the most recent state record of an order.
func (h GetLastStateQueryHandler) Handle(ctx context.Context, query GetLastStateQuery) (order.State, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var state string
	err := h.db.WithContext(ctx).Raw(`
		SELECT state
		FROM order_states
		WHERE order_id = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	`, query.OrderID().Bytes()).Row().Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return "", errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return "", err
	}

	return order.ParseState(state)
}
