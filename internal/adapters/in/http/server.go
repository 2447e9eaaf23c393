// Package http exposes the ordering use cases over JSON. It only translates between
// the wire and the application layer: every rule lives in commands and queries.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const defaultPageSize = 20

type (
	LoginCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.LoginCustomerCommand) (kernel.UUID, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.UUID, error)
	}
	ChangeOrderStateHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStateCommand) (order.State, error)
	}
	CustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerOrdersQuery) ([]queries.CustomerOrder, error)
	}
	RestaurantOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetRestaurantOrdersQuery) (queries.GetRestaurantOrdersQueryResponse, error)
	}
	OrderDetailHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailQuery) (queries.OrderDetail, error)
	}
	StateCountsHandler interface {
		Handle(ctx context.Context, query queries.GetStateCountsQuery) (queries.StateCounts, error)
	}
	LastStateHandler interface {
		Handle(ctx context.Context, query queries.GetLastStateQuery) (order.State, error)
	}
	RestaurantReader interface {
		Restaurant(ctx context.Context, id kernel.UUID) (ports.RestaurantSummary, error)
	}
)

// Handlers groups the use cases served by the Server.
type Handlers struct {
	LoginCustomer    LoginCustomerHandler
	CreateOrder      CreateOrderHandler
	ChangeOrderState ChangeOrderStateHandler
	CustomerOrders   CustomerOrdersHandler
	RestaurantOrders RestaurantOrdersHandler
	OrderDetail      OrderDetailHandler
	StateCounts      StateCountsHandler
	LastState        LastStateHandler
	Restaurants      RestaurantReader
}

type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger.With("component", "http")}
}

// Register mounts /health and every /api/v1 route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1")
	api.POST("/customers/login", s.LoginCustomer)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/state", s.GetOrderState)
	api.PUT("/orders/:id/state", s.ChangeOrderState)

	api.GET("/restaurants/:id", s.GetRestaurant)
	api.GET("/restaurants/:id/orders", s.GetRestaurantOrders)
	api.GET("/restaurants/:id/state-counts", s.GetStateCounts)
}

// LoginCustomer handles POST /api/v1/customers/login.
func (s *Server) LoginCustomer(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewLoginCustomerCommand(req.Code)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.h.LoginCustomer.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, LoginResponse{CustomerID: id})
}

// CreateOrder handles POST /api/v1/orders. The ordering customer is the actor.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}
	if actor.Role() != order.RoleCustomer {
		return s.fail(c, errs.NewUnauthorizedError("order", "new", actor.String()))
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := toMoney("price", req.Price)
	if err != nil {
		return s.fail(c, err)
	}
	lines := make([]services.OrderLine, len(req.Dishes))
	for i, d := range req.Dishes {
		lines[i] = services.OrderLine{DishID: d.DishID, Specifications: d.Specifications, Count: d.Count}
	}

	cmd, err := commands.NewCreateOrderCommand(actor.ID(), req.RestaurantID, req.Table, lines, req.Remark, price)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreateOrderResponse{OrderID: id})
}

// ChangeOrderState handles PUT /api/v1/orders/:id/state.
func (s *Server) ChangeOrderState(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	actor, err := actorFrom(c)
	if err != nil {
		return s.fail(c, err)
	}

	var req ChangeStateRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderStateCommand(id, order.State(req.State), actor, req.PaymentMethod)
	if err != nil {
		return s.fail(c, err)
	}
	state, err := s.h.ChangeOrderState.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, StateResponse{State: state.String()})
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders?page=&page_size=.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	page, size, err := paging(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(id, page, size)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.CustomerOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]Order, len(result))
	for i, o := range result {
		response[i] = fromCustomerOrder(o)
	}
	return c.JSON(http.StatusOK, response)
}

// GetRestaurantOrders handles
// GET /api/v1/restaurants/:id/orders?page=&page_size=&state=&state=&keyword=.
func (s *Server) GetRestaurantOrders(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	page, size, err := paging(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	query, err := queries.NewGetRestaurantOrdersQuery(id, page, size, c.QueryParams()["state"], c.QueryParam("keyword"))
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.RestaurantOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	orders := make([]Order, len(result.Orders))
	for i, o := range result.Orders {
		orders[i] = fromRestaurantOrder(o)
	}
	return c.JSON(http.StatusOK, RestaurantOrdersResponse{Orders: orders, PageCount: result.PageCount})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderDetailQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	detail, err := s.h.OrderDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, fromOrderDetail(detail))
}

// GetOrderState handles GET /api/v1/orders/:id/state.
func (s *Server) GetOrderState(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetLastStateQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	state, err := s.h.LastState.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, StateResponse{State: state.String()})
}

// GetRestaurant handles GET /api/v1/restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	summary, err := s.h.Restaurants.Restaurant(c.Request().Context(), id)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRestaurant(summary))
}

// GetStateCounts handles GET /api/v1/restaurants/:id/state-counts?from=&to= with
// RFC 3339 bounds.
func (s *Server) GetStateCounts(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return badRequest(c, "from must be an RFC 3339 time")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return badRequest(c, "to must be an RFC 3339 time")
	}

	query, err := queries.NewGetStateCountsQuery(id, from, to)
	if err != nil {
		return s.fail(c, err)
	}
	counts, err := s.h.StateCounts.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, StateCounts{
		Created:   counts.Created,
		Paid:      counts.Paid,
		Accepted:  counts.Accepted,
		Cancelled: counts.Cancelled,
		Completed: counts.Completed,
	})
}

func pathID(c echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("id", c.Param("id"), err)
	}
	return id, nil
}

// paging reads page and page_size; absent values default to the first page of
// defaultPageSize orders. Range checks are left to the queries.
func paging(c echo.Context) (int, int, error) {
	page, size := 0, defaultPageSize
	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		page = n
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		size = n
	}
	return page, size, nil
}
