package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

const restaurantJoin = `
	JOIN restaurants r ON r.id = o.restaurant_id`

type GetRestaurantOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetRestaurantOrdersQueryHandler(db *gorm.DB) GetRestaurantOrdersQueryHandler {
	return GetRestaurantOrdersQueryHandler{db: db}
}

// filter renders the WHERE clause shared by the page and the count query.
func (h GetRestaurantOrdersQueryHandler) filter(query GetRestaurantOrdersQuery) (string, []any) {
	clauses := []string{"o.restaurant_id = ?"}
	args := []any{query.RestaurantID().Bytes()}

	if states := query.States(); len(states) > 0 {
		names := make([]string, 0, len(states))
		for _, s := range states {
			names = append(names, s.String())
		}
		clauses = append(clauses, "s.state IN ?")
		args = append(args, names)
	}

	if keyword := query.Keyword(); keyword != "" {
		pattern := "%" + likeEscaper.Replace(keyword) + "%"
		clauses = append(clauses, `(o.remark ILIKE ? OR o.table_label ILIKE ? OR o.dishes::text ILIKE ?)`)
		args = append(args, pattern, pattern, pattern)
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (h GetRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantOrdersQuery,
) (GetRestaurantOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRestaurantOrdersQueryResponse{}, err
	}

	where, args := h.filter(query)

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders o`+latestState+restaurantJoin+where, args...).Row().Scan(&total)
	if err != nil {
		return GetRestaurantOrdersQueryResponse{}, err
	}

	pageArgs := append(args, query.Page().Size, query.Page().Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`,`+restaurantColumns+`
		FROM orders o`+latestState+restaurantJoin+where+`
		ORDER BY o.created_at DESC, o.id
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return GetRestaurantOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]RestaurantOrder, 0)
	for rows.Next() {
		var o orderRow
		var r restaurantRow
		if err = rows.Scan(append(o.targets(), r.targets()...)...); err != nil {
			return GetRestaurantOrdersQueryResponse{}, err
		}

		fields, decodeErr := o.decode()
		if decodeErr != nil {
			return GetRestaurantOrdersQueryResponse{}, decodeErr
		}
		restaurant, summaryErr := r.summary()
		if summaryErr != nil {
			return GetRestaurantOrdersQueryResponse{}, summaryErr
		}

		orders = append(orders, RestaurantOrder{
			ID:         fields.id,
			Restaurant: restaurant,
			Customer:   CustomerRef{ID: fields.customerID},
			Table:      o.table,
			Items:      fields.items,
			Price:      fields.price,
			Remark:     o.remark,
			Payment:    o.payment,
			State:      fields.state,
			StateAt:    o.stateAt,
			CreatedAt:  o.createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetRestaurantOrdersQueryResponse{}, err
	}

	return GetRestaurantOrdersQueryResponse{
		Orders:    orders,
		PageCount: query.Page().PageCount(total),
	}, nil
}
