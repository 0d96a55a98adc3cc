package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category maps to the categories table.
type Category struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description,omitempty"`
	Icon        *string   `db:"icon" json:"icon,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Medicine maps to the medicines table.
type Medicine struct {
	ID                   uuid.UUID       `db:"id" json:"id"`
	Name                 string          `db:"name" json:"name"`
	Slug                 string          `db:"slug" json:"slug"`
	Description          *string         `db:"description" json:"description,omitempty"`
	Price                decimal.Decimal `db:"price" json:"price"`
	Stock                int             `db:"stock" json:"stock"`
	CategoryID           uuid.UUID       `db:"category_id" json:"category_id"`
	Manufacturer         *string         `db:"manufacturer" json:"manufacturer,omitempty"`
	Dosage               *string         `db:"dosage" json:"dosage,omitempty"`
	ImageURL             *string         `db:"image_url" json:"image_url,omitempty"`
	PrescriptionRequired bool            `db:"prescription_required" json:"prescription_required"`
	Active               bool            `db:"active" json:"active"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updated_at"`
}
