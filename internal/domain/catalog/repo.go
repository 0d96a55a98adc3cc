package catalog

import (
	"context"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	Create(ctx context.Context, cat *Category) error
	List(ctx context.Context) ([]*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
}

type MedicineRepository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	GetBySlug(ctx context.Context, slug string) (*Medicine, error)
	Update(ctx context.Context, m *Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListActive returns the customer-facing snapshot: active medicines only,
	// name ascending.
	ListActive(ctx context.Context) ([]*Medicine, error)
	// ListAll returns every medicine regardless of active flag, newest first.
	ListAll(ctx context.Context, limit, offset int) ([]*Medicine, int, error)
}
