// Package queries contains read-only operations over orders. Handlers run raw SQL
// through GORM and build every response struct field by field; no row type leaks
// into a response.
package queries

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxPageSize bounds every paginated query.
const MaxPageSize = 100

// Page selects a window of a result list. Number is zero-based.
type Page struct {
	Number int
	Size   int
}

// NewPage validates a page request: number >= 0, size in [1, MaxPageSize] and an
// offset that fits in an int.
func NewPage(number, size int) (Page, error) {
	var numberErr, sizeErr error
	if number < 0 {
		numberErr = errs.NewValueIsOutOfRangeError("page", number, 0, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("page size", size, 1, MaxPageSize)
	}
	if numberErr == nil && sizeErr == nil && number > math.MaxInt/size {
		numberErr = errs.NewValueIsOutOfRangeError("page", number, 0, math.MaxInt/size)
	}
	if err := errors.Join(numberErr, sizeErr); err != nil {
		return Page{}, err
	}
	return Page{Number: number, Size: size}, nil
}

func (p Page) Offset() int {
	return p.Number * p.Size
}

// PageCount is the number of pages needed for total rows.
func (p Page) PageCount(total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(p.Size)))
}

// OrderLine is a line of the order snapshot as shown to callers.
type OrderLine struct {
	Name           string
	Specifications string
	Price          kernel.Money
	Count          int
	ImageURL       string
}

// CustomerRef identifies the customer of an order without exposing profile data.
type CustomerRef struct {
	ID kernel.UUID
}

// CustomerSummary is the customer's public profile shown on an order detail.
type CustomerSummary struct {
	ID        kernel.UUID
	Nickname  string
	AvatarURL string
}

// storedLine mirrors orderrepo.LineItemDTO, the json stored in orders.dishes.
type storedLine struct {
	Name           string `json:"name"`
	Specifications string `json:"specifications"`
	Price          int64  `json:"price"`
	Count          int    `json:"count"`
	ImageURL       string `json:"image_url"`
}

func decodeLines(raw []byte) ([]OrderLine, error) {
	var stored []storedLine
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	lines := make([]OrderLine, 0, len(stored))
	for _, s := range stored {
		lines = append(lines, OrderLine{
			Name:           s.Name,
			Specifications: s.Specifications,
			Price:          kernel.Money(s.Price),
			Count:          s.Count,
			ImageURL:       s.ImageURL,
		})
	}
	return lines, nil
}

func toUUID(raw uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(raw[:])
}

// orderColumns is the select list shared by the order list queries. The latest
// state comes from the lateral join aliased s.
const orderColumns = `
	o.id,
	o.customer_id,
	o.restaurant_id,
	o.table_label,
	o.price,
	o.remark,
	o.dishes,
	o.payment,
	o.created_at,
	s.state,
	s.recorded_at`

// latestState joins the most recent record of each order as s.
const latestState = `
	JOIN LATERAL (
		SELECT state, recorded_at
		FROM order_states
		WHERE order_id = o.id
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1
	) s ON true`

// orderRow is the scan target of orderColumns.
type orderRow struct {
	id, customerID, restaurantID uuid.UUID
	table                        string
	price                        int64
	remark                       string
	dishes                       []byte
	payment                      string
	createdAt                    time.Time
	state                        string
	stateAt                      time.Time
}

func (r *orderRow) targets() []any {
	return []any{
		&r.id, &r.customerID, &r.restaurantID, &r.table, &r.price, &r.remark,
		&r.dishes, &r.payment, &r.createdAt, &r.state, &r.stateAt,
	}
}

// orderFields are the decoded common fields of an orderRow.
type orderFields struct {
	id, customerID, restaurantID kernel.UUID
	items                        []OrderLine
	price                        kernel.Money
	state                        order.State
}

func (r *orderRow) decode() (orderFields, error) {
	var f orderFields
	var err error
	if f.id, err = toUUID(r.id); err != nil {
		return f, err
	}
	if f.customerID, err = toUUID(r.customerID); err != nil {
		return f, err
	}
	if f.restaurantID, err = toUUID(r.restaurantID); err != nil {
		return f, err
	}
	if f.items, err = decodeLines(r.dishes); err != nil {
		return f, err
	}
	if f.state, err = order.ParseState(r.state); err != nil {
		return f, err
	}
	f.price = kernel.Money(r.price)
	return f, nil
}

// restaurantColumns selects the public restaurant summary from alias r.
const restaurantColumns = `
	r.id,
	r.name,
	COALESCE(r.email, ''),
	COALESCE(r.logo_url, ''),
	COALESCE(r.description, ''),
	COALESCE(r.phone, ''),
	COALESCE(r.license_url, '')`

type restaurantRow struct {
	id                                                   uuid.UUID
	name, email, logoURL, description, phone, licenseURL string
}

func (r *restaurantRow) targets() []any {
	return []any{&r.id, &r.name, &r.email, &r.logoURL, &r.description, &r.phone, &r.licenseURL}
}

func (r *restaurantRow) summary() (ports.RestaurantSummary, error) {
	id, err := toUUID(r.id)
	if err != nil {
		return ports.RestaurantSummary{}, err
	}
	return ports.RestaurantSummary{
		ID:          id,
		Name:        r.name,
		Email:       r.email,
		LogoURL:     r.logoURL,
		Description: r.description,
		Phone:       r.phone,
		LicenseURL:  r.licenseURL,
	}, nil
}
