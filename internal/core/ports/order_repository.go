// Package ports defines the contracts between the ordering core and its
// infrastructure: order persistence, catalog reads, customer identity and
// transaction boundaries.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The snapshot (table, lines, price) is written once; afterwards only the payment
// tag and new state records are stored.
type OrderRepository interface {
	// Add inserts the order row together with its initial state record.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the payment tag and appends the records returned by
	// aggregate.NewRecords(). Existing records are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its full history. Returns an errs.ObjectNotFoundError
	// when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get holding a row lock on the order until the surrounding
	// transaction ends, so concurrent transitions on one order serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
