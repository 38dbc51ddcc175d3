package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product model. CategoryID is an opaque reference,
// it is stored as a plain integer and never validated against the
// categories table.
type Product struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Slug  string `db:"slug"`

	Price      decimal.Decimal `db:"price"`
	CategoryID int64           `db:"category"`
	Text       string          `db:"text"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetID returns the product ID.
func (p Product) GetID() int64 {
	return p.ID
}

// GetTitle returns the product title.
func (p Product) GetTitle() string {
	return p.Title
}
