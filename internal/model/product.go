package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProductStore defines persistence operations for products.
type ProductStore interface {
	Create(ctx context.Context, product Product) (Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (Product, error)
	List(ctx context.Context, filter ProductFilter) ([]Product, error)
	Update(ctx context.Context, product Product) (Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Product belongs to exactly one company.
type Product struct {
	ID            uuid.UUID
	Name          string
	SKU           *string
	Description   string
	Price         float64
	DiscountPrice *float64
	Stock         int
	CompanyID     uuid.UUID
	CompanyName   string
	IsActive      bool
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductFilter narrows product listings. Zero fields are ignored.
type ProductFilter struct {
	CompanyID *uuid.UUID
	IsActive  *bool
	Search    string
}
