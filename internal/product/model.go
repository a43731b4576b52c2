package product

import "time"

type Product struct {
	ID          int
	Name        string
	Description *string
	Price       int // minor units
	Image       *string
	Stock       int
	Size        *string
	Color       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Input is the admin-editable part of a product. Update replaces every field.
type Input struct {
	Name        string `validate:"notblank,max=255"`
	Description *string
	Price       int `validate:"gte=0"`
	Image       *string
	Stock       int     `validate:"gte=0"`
	Size        *string `validate:"omitempty,max=50"`
	Color       *string `validate:"omitempty,max=50"`
}
