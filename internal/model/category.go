package model

import "time"

// Category represents a product category model.
type Category struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	Slug  string `db:"slug"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetID returns the category ID.
func (c Category) GetID() int64 {
	return c.ID
}

// GetTitle returns the category title.
func (c Category) GetTitle() string {
	return c.Title
}
