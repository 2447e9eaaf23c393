package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// CustomerResolver maps an external login code to a stable customer id, registering
// the customer on first sight.
type CustomerResolver interface {
	Resolve(ctx context.Context, code string) (kernel.UUID, error)
}
