package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// LoginCustomerCommandHandler resolves a login code to a customer id, registering
// unknown customers.
type LoginCustomerCommandHandler struct {
	resolver ports.CustomerResolver
	logger   *slog.Logger
}

func NewLoginCustomerCommandHandler(resolver ports.CustomerResolver, logger *slog.Logger) LoginCustomerCommandHandler {
	return LoginCustomerCommandHandler{
		resolver: resolver,
		logger:   logger.With("component", "LoginCustomerCommandHandler"),
	}
}

func (h LoginCustomerCommandHandler) Handle(ctx context.Context, cmd LoginCustomerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	id, err := h.resolver.Resolve(ctx, cmd.Code())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve customer", "error", err)
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "customer logged in", "customer_id", id)
	return id, nil
}
