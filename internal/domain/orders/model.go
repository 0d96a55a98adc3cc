package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/medikart/medikart/internal/domain/catalog"
)

// Order lifecycle statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var validOrderStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

// statusColors maps each status to its storefront badge color.
var statusColors = map[string]string{
	StatusPending:    "yellow",
	StatusProcessing: "blue",
	StatusShipped:    "purple",
	StatusDelivered:  "green",
	StatusCancelled:  "red",
}

// StatusColor returns the badge color for a status, falling back to gray
// for anything unrecognized.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return "gray"
}

// ClampQuantity forces q into [1, stock]. Out-of-range requests are
// adjusted silently rather than rejected.
func ClampQuantity(q, stock int) int {
	if q < 1 {
		return 1
	}
	if q > stock {
		return stock
	}
	return q
}

type Order struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	UserID          uuid.UUID       `db:"user_id" json:"user_id"`
	Status          string          `db:"status" json:"status"`
	StatusColor     string          `db:"-" json:"status_color"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	ShippingAddress string          `db:"shipping_address" json:"shipping_address"`
	ContactPhone    string          `db:"contact_phone" json:"contact_phone"`
	Notes           *string         `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
	Items           []*OrderItem    `db:"-" json:"items,omitempty"`
}

// OrderItem is an order line. Price is the unit price snapshotted at
// purchase time; later catalog edits never change it.
type OrderItem struct {
	ID         uuid.UUID         `db:"id" json:"id"`
	OrderID    uuid.UUID         `db:"order_id" json:"order_id"`
	MedicineID uuid.UUID         `db:"medicine_id" json:"medicine_id"`
	Quantity   int               `db:"quantity" json:"quantity"`
	Price      decimal.Decimal   `db:"price" json:"price"`
	Medicine   *catalog.Medicine `db:"-" json:"medicine,omitempty"`
}

// Subtotal is the line amount: snapshotted unit price times quantity.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	ShippingAddress string           `json:"shipping_address"`
	ContactPhone    string           `json:"contact_phone"`
	Notes           *string          `json:"notes,omitempty"`
	Items           []PlaceOrderItem `json:"items"`
}

type PlaceOrderItem struct {
	MedicineID uuid.UUID `json:"medicine_id"`
	Quantity   int       `json:"quantity"`
}

// UpdateStatusRequest is the admin status-change payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
