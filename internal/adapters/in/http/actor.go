package http

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Actor headers are set by the gateway after authenticating the caller.
const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorID   = "X-Actor-ID"
)

func actorFrom(c echo.Context) (order.Actor, error) {
	roleHeader := c.Request().Header.Get(HeaderActorRole)
	idHeader := c.Request().Header.Get(HeaderActorID)
	if roleHeader == "" || idHeader == "" {
		return order.Actor{}, errs.NewValueIsRequiredError("actor")
	}

	role, err := order.ParseRole(roleHeader)
	if err != nil {
		return order.Actor{}, err
	}
	id, err := kernel.UUIDFromString(idHeader)
	if err != nil {
		return order.Actor{}, errs.NewValueIsInvalidErrorWithCause("actor id", err)
	}
	actor, err := order.NewActor(role, id)
	if err != nil {
		return order.Actor{}, errs.NewValueIsInvalidErrorWithCause("actor", err)
	}
	return actor, nil
}
