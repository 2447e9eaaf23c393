package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrLoginCustomerCommandIsNotConstructed = errors.New(
	"LoginCustomerCommand must be created via NewLoginCustomerCommand constructor",
)

// LoginCustomerCommand carries the code issued by the external identity provider.
type LoginCustomerCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

func NewLoginCustomerCommand(code string) (LoginCustomerCommand, error) {
	if code == "" {
		return LoginCustomerCommand{}, errs.NewValueIsRequiredError("code")
	}
	return LoginCustomerCommand{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (c LoginCustomerCommand) Validate() error {
	return c.guard.Validate(ErrLoginCustomerCommandIsNotConstructed)
}

func (c LoginCustomerCommand) Code() string { return c.code }
