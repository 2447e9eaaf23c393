package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CreateOrderCommandHandler turns a cart into a persisted order in Created state.
//
// Catalog reads happen before the transaction; the order row and its first state
// record are written in one unit of work, so a failure leaves nothing behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(catalog, uowFactory, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrPriceMismatch) {
//	    // ask the client to refresh the menu
//	}
type CreateOrderCommandHandler struct {
	catalog    ports.CatalogReader
	uowFactory OrderUoWFactory
	composer   services.OrderComposer
	logger     *slog.Logger
	now        func() time.Time
}

func NewCreateOrderCommandHandler(
	catalog ports.CatalogReader,
	uowFactory OrderUoWFactory,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		catalog:    catalog,
		uowFactory: uowFactory,
		composer:   services.NewOrderComposer(),
		logger:     logger.With("component", "CreateOrderCommandHandler"),
		now:        time.Now,
	}
}

// Handle validates and prices the cart, then stores the order. It returns the id of
// the new order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	tables, err := h.catalog.Tables(ctx, cmd.RestaurantID())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read restaurant tables", "restaurant_id", cmd.RestaurantID(), "error", err)
		return kernel.UUID{}, err
	}

	dishes, err := h.catalog.Dishes(ctx, cmd.DishIDs())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read dishes", "restaurant_id", cmd.RestaurantID(), "error", err)
		return kernel.UUID{}, err
	}

	o, err := h.composer.Compose(services.CompositionRequest{
		OrderID:      cmd.OrderID(),
		CustomerID:   cmd.CustomerID(),
		RestaurantID: cmd.RestaurantID(),
		Table:        cmd.Table(),
		Lines:        cmd.Lines(),
		Remark:       cmd.Remark(),
		ClaimedPrice: cmd.ClaimedPrice(),
		CreatedAt:    h.now(),
	}, tables, dishes)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		h.logger.ErrorContext(ctx, "failed to store order", "order_id", o.ID(), "error", err)
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to commit order", "order_id", o.ID(), "error", err)
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "order created",
		"order_id", o.ID(),
		"restaurant_id", o.RestaurantID(),
		"price", o.Price().String(),
	)
	return o.ID(), nil
}
