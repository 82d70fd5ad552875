package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultCountry is assigned to company addresses without a country.
const DefaultCountry = "Indonesia"

// CompanyStore defines persistence operations for companies.
type CompanyStore interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	GetByName(ctx context.Context, name string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, company Company) (Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Company is a tenant owning products.
type Company struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Phone       string
	Address     Address
	Location    *Location
	Industry    string
	Description string
	Vision      string
	Mission     []string
	IsActive    bool
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Address is a postal address stored as a JSON document.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Location is a geographic point.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
