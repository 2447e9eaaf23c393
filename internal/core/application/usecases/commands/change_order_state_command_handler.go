package commands

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/order"
)

// ChangeOrderStateCommandHandler applies one lifecycle transition.
//
// The order is loaded under a row lock, so two transitions on the same order run one
// after the other and the second sees the state written by the first. The new state
// record and the payment tag are stored in the same unit of work.
type ChangeOrderStateCommandHandler struct {
	uowFactory     OrderUoWFactory
	defaultPayment string
	logger         *slog.Logger
	now            func() time.Time
}

// NewChangeOrderStateCommandHandler creates the handler. defaultPayment is stamped
// on paid orders whose command names no method; empty means order.DefaultPaymentMethod.
func NewChangeOrderStateCommandHandler(
	uowFactory OrderUoWFactory,
	defaultPayment string,
	logger *slog.Logger,
) ChangeOrderStateCommandHandler {
	if defaultPayment == "" {
		defaultPayment = order.DefaultPaymentMethod
	}
	return ChangeOrderStateCommandHandler{
		uowFactory:     uowFactory,
		defaultPayment: defaultPayment,
		logger:         logger.With("component", "ChangeOrderStateCommandHandler"),
		now:            time.Now,
	}
}

// Handle returns the resulting state. Errors are the ones of the order aggregate:
// not found, not owner, or invalid transition.
func (h ChangeOrderStateCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStateCommand) (order.State, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return "", err
	}

	if cmd.Target() == order.Paid {
		method := cmd.PaymentMethod()
		if method == "" {
			method = h.defaultPayment
		}
		err = o.Pay(cmd.Actor(), method, h.now())
	} else {
		err = o.Transition(cmd.Actor(), cmd.Target(), h.now())
	}
	if err != nil {
		return "", err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		h.logger.ErrorContext(ctx, "failed to store transition", "order_id", o.ID(), "error", err)
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to commit transition", "order_id", o.ID(), "error", err)
		return "", err
	}

	h.logger.InfoContext(ctx, "order state changed",
		"order_id", o.ID(),
		"state", o.State().String(),
		"actor", cmd.Actor().String(),
	)
	return o.State(), nil
}
