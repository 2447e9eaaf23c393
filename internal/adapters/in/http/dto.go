package http

import (
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Code string `json:"code"`
}

type LoginResponse struct {
	CustomerID kernel.UUID `json:"customer_id"`
}

type OrderLineRequest struct {
	DishID         kernel.UUID `json:"dish_id"`
	Specifications []int       `json:"specifications"`
	Count          int         `json:"count"`
}

// CreateOrderRequest is placed by the customer named in the actor headers. Price is
// the total the client displayed, in major units.
type CreateOrderRequest struct {
	RestaurantID kernel.UUID        `json:"restaurant_id"`
	Table        string             `json:"table"`
	Remark       string             `json:"remark"`
	Price        decimal.Decimal    `json:"price"`
	Dishes       []OrderLineRequest `json:"dishes"`
}

type CreateOrderResponse struct {
	OrderID kernel.UUID `json:"order_id"`
}

type ChangeStateRequest struct {
	State         string `json:"state"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type StateResponse struct {
	State string `json:"state"`
}

type Restaurant struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	LogoURL     string      `json:"logo_url"`
	Description string      `json:"description"`
	Phone       string      `json:"phone"`
	LicenseURL  string      `json:"license_url"`
}

type Customer struct {
	ID        kernel.UUID `json:"id"`
	Nickname  string      `json:"nickname,omitempty"`
	AvatarURL string      `json:"avatar_url,omitempty"`
}

type OrderLine struct {
	Name           string `json:"name"`
	Specifications string `json:"specifications"`
	Price          string `json:"price"`
	Count          int    `json:"count"`
	ImageURL       string `json:"image_url"`
}

type Order struct {
	ID         kernel.UUID `json:"id"`
	Customer   Customer    `json:"customer"`
	Restaurant *Restaurant `json:"restaurant,omitempty"`
	Table      string      `json:"table"`
	Dishes     []OrderLine `json:"dishes"`
	Price      string      `json:"price"`
	Remark     string      `json:"remark"`
	Payment    string      `json:"payment,omitempty"`
	State      string      `json:"state"`
	StateAt    *time.Time  `json:"state_at,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type RestaurantOrdersResponse struct {
	Orders    []Order `json:"orders"`
	PageCount int     `json:"page_count"`
}

type StateCounts struct {
	Created   int64 `json:"created"`
	Paid      int64 `json:"paid"`
	Accepted  int64 `json:"accepted"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
}

func toRestaurant(s ports.RestaurantSummary) Restaurant {
	return Restaurant{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		LogoURL:     s.LogoURL,
		Description: s.Description,
		Phone:       s.Phone,
		LicenseURL:  s.LicenseURL,
	}
}

func toLines(items []queries.OrderLine) []OrderLine {
	lines := make([]OrderLine, len(items))
	for i, item := range items {
		lines[i] = OrderLine{
			Name:           item.Name,
			Specifications: item.Specifications,
			Price:          fromMoney(item.Price),
			Count:          item.Count,
			ImageURL:       item.ImageURL,
		}
	}
	return lines
}

func fromCustomerOrder(o queries.CustomerOrder) Order {
	restaurant := toRestaurant(o.Restaurant)
	return Order{
		ID:         o.ID,
		Customer:   Customer{ID: o.Customer.ID},
		Restaurant: &restaurant,
		Table:      o.Table,
		Dishes:     toLines(o.Items),
		Price:      fromMoney(o.Price),
		Remark:     o.Remark,
		Payment:    o.Payment,
		State:      o.State.String(),
		CreatedAt:  o.CreatedAt,
	}
}

func fromRestaurantOrder(o queries.RestaurantOrder) Order {
	restaurant := toRestaurant(o.Restaurant)
	stateAt := o.StateAt
	return Order{
		ID:         o.ID,
		Customer:   Customer{ID: o.Customer.ID},
		Restaurant: &restaurant,
		Table:      o.Table,
		Dishes:     toLines(o.Items),
		Price:      fromMoney(o.Price),
		Remark:     o.Remark,
		Payment:    o.Payment,
		State:      o.State.String(),
		StateAt:    &stateAt,
		CreatedAt:  o.CreatedAt,
	}
}

func fromOrderDetail(o queries.OrderDetail) Order {
	restaurant := toRestaurant(o.Restaurant)
	stateAt := o.StateAt
	return Order{
		ID: o.ID,
		Customer: Customer{
			ID:        o.Customer.ID,
			Nickname:  o.Customer.Nickname,
			AvatarURL: o.Customer.AvatarURL,
		},
		Restaurant: &restaurant,
		Table:      o.Table,
		Dishes:     toLines(o.Items),
		Price:      fromMoney(o.Price),
		Remark:     o.Remark,
		Payment:    o.Payment,
		State:      o.State.String(),
		StateAt:    &stateAt,
		CreatedAt:  o.CreatedAt,
	}
}
