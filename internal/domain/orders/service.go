package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/medikart/medikart/internal/domain/catalog"
	"github.com/medikart/medikart/internal/platform/db"
)

// ErrForbidden is returned when a caller asks for an order that is not
// theirs and they are not an admin.
var ErrForbidden = errors.New("forbidden")

type Service struct {
	orders    OrderRepository
	medicines catalog.MedicineRepository
	pool      *pgxpool.Pool
}

// NewService wires the order repository with the catalog it snapshots
// prices from. pool may be nil, in which case placement runs without a
// surrounding transaction.
func NewService(orders OrderRepository, medicines catalog.MedicineRepository, pool *pgxpool.Pool) *Service {
	return &Service{
		orders:    orders,
		medicines: medicines,
		pool:      pool,
	}
}

// PlaceOrder checks out a cart. Each line snapshots the medicine's current
// price, quantities are clamped to [1, stock] without complaint, and the
// total is computed once from the lines and stored. Stock is not
// decremented. The order and its lines are written in one transaction.
func (s *Service) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*Order, error) {
	if req.ShippingAddress == "" {
		return nil, fmt.Errorf("shipping_address is required")
	}
	if req.ContactPhone == "" {
		return nil, fmt.Errorf("contact_phone is required")
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	o := &Order{
		UserID:          userID,
		Status:          StatusPending,
		ShippingAddress: req.ShippingAddress,
		ContactPhone:    req.ContactPhone,
		Notes:           req.Notes,
	}

	total := decimal.Zero
	for _, line := range req.Items {
		m, err := s.medicines.GetByID(ctx, line.MedicineID)
		if err != nil {
			return nil, fmt.Errorf("medicine %s not found", line.MedicineID)
		}
		if !m.Active {
			return nil, fmt.Errorf("medicine %s is not available", m.Name)
		}
		if m.Stock < 1 {
			return nil, fmt.Errorf("medicine %s is out of stock", m.Name)
		}
		item := &OrderItem{
			MedicineID: m.ID,
			Quantity:   ClampQuantity(line.Quantity, m.Stock),
			Price:      m.Price,
		}
		total = total.Add(item.Subtotal())
		o.Items = append(o.Items, item)
	}
	o.TotalAmount = total
	o.StatusColor = StatusColor(o.Status)

	if s.pool == nil {
		return o, s.orders.Create(ctx, o)
	}
	err := db.InTx(ctx, s.pool, func(ctx context.Context) error {
		return s.orders.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// GetOrder loads an order for its owner or for an admin.
func (s *Service) GetOrder(ctx context.Context, id, callerID uuid.UUID, role string) (*Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.UserID != callerID && role != "admin" {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *Service) ListMyOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Order, int, error) {
	return s.orders.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) ListAllOrders(ctx context.Context, limit, offset int) ([]*Order, int, error) {
	return s.orders.ListAll(ctx, limit, offset)
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !validOrderStatuses[status] {
		return fmt.Errorf("invalid status: %s", status)
	}
	if _, err := s.orders.GetByID(ctx, id); err != nil {
		return fmt.Errorf("order not found")
	}
	return s.orders.UpdateStatus(ctx, id, status)
}
