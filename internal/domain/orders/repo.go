package orders

import (
	"context"

	"github.com/google/uuid"
)

type OrderRepository interface {
	// Create persists the order and its items. Callers are expected to run
	// it inside a transaction so the order never lands without its lines.
	Create(ctx context.Context, o *Order) error
	// GetByID loads the order with its items and their medicines.
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// ListByUser returns a user's orders, newest first, items included.
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Order, int, error)
	// ListAll returns every order, newest first, items included.
	ListAll(ctx context.Context, limit, offset int) ([]*Order, int, error)
	// UpdateStatus changes only the status column.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
