package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	categories CategoryRepository
	medicines  MedicineRepository
}

func NewService(categories CategoryRepository, medicines MedicineRepository) *Service {
	return &Service{
		categories: categories,
		medicines:  medicines,
	}
}

// -- Categories --

func (s *Service) CreateCategory(ctx context.Context, cat *Category) error {
	if cat.Name == "" {
		return fmt.Errorf("name is required")
	}
	cat.Slug = Slugify(cat.Name)
	return s.categories.Create(ctx, cat)
}

func (s *Service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.List(ctx)
}

// -- Medicines --

// Browse fetches the active snapshot and applies the filter to it. For a
// fixed snapshot the result is fully determined by the filter.
func (s *Service) Browse(ctx context.Context, f Filter) ([]*Medicine, error) {
	snapshot, err := s.medicines.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMedicines(snapshot, f), nil
}

func (s *Service) GetMedicineBySlug(ctx context.Context, slug string) (*Medicine, error) {
	return s.medicines.GetBySlug(ctx, slug)
}

func (s *Service) GetMedicine(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) validateMedicine(m *Medicine) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.CategoryID == uuid.Nil {
		return fmt.Errorf("category_id is required")
	}
	if m.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if m.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return nil
}

func (s *Service) CreateMedicine(ctx context.Context, m *Medicine) error {
	if err := s.validateMedicine(m); err != nil {
		return err
	}
	m.Slug = Slugify(m.Name)
	return s.medicines.Create(ctx, m)
}

func (s *Service) UpdateMedicine(ctx context.Context, m *Medicine) error {
	if err := s.validateMedicine(m); err != nil {
		return err
	}
	m.Slug = Slugify(m.Name)
	return s.medicines.Update(ctx, m)
}

func (s *Service) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	return s.medicines.Delete(ctx, id)
}

func (s *Service) ListAllMedicines(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	return s.medicines.ListAll(ctx, limit, offset)
}
