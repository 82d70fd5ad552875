package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ImageStore defines persistence operations for images.
type ImageStore interface {
	Create(ctx context.Context, image Image) (Image, error)
	GetByID(ctx context.Context, id uuid.UUID) (Image, error)
	ListByOwner(ctx context.Context, ownerType OwnerType, ownerID uuid.UUID) ([]Image, error)
	// SetPrimary marks the image primary and clears the flag on its siblings.
	SetPrimary(ctx context.Context, id uuid.UUID) (Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OwnerType is the kind of entity an image is attached to.
type OwnerType string

const (
	OwnerCompany OwnerType = "Company"
	OwnerUser    OwnerType = "User"
	OwnerProduct OwnerType = "Product"
)

// Valid reports whether t is a known owner type.
func (t OwnerType) Valid() bool {
	switch t {
	case OwnerCompany, OwnerUser, OwnerProduct:
		return true
	}
	return false
}

// Image is an object on the media host attached to an owner.
type Image struct {
	ID         uuid.UUID
	URL        string
	ObjectKey  string
	Filename   string
	MimeType   string
	Size       int64
	Width      *int
	Height     *int
	AltText    string
	OwnerType  OwnerType
	OwnerID    uuid.UUID
	IsPrimary  bool
	IsActive   bool
	UploadedBy *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
