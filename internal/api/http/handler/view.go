package handler

import (
	"time"

	"github.com/dtroode/catalog-server/internal/model"
	"github.com/google/uuid"
)

type userView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	CompanyID   *uuid.UUID `json:"companyId,omitempty"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func newUserView(u model.User) userView {
	return userView{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		CompanyID:   u.CompanyID,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type loginView struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
}

type tokenView struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type companyView struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Address     model.Address   `json:"address"`
	Location    *model.Location `json:"location,omitempty"`
	Industry    string          `json:"industry,omitempty"`
	Description string          `json:"description,omitempty"`
	Vision      string          `json:"vision,omitempty"`
	Mission     []string        `json:"mission"`
	IsActive    bool            `json:"isActive"`
	CreatedBy   *uuid.UUID      `json:"createdBy,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newCompanyView(c model.Company) companyView {
	mission := c.Mission
	if mission == nil {
		mission = []string{}
	}
	return companyView{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Location:    c.Location,
		Industry:    c.Industry,
		Description: c.Description,
		Vision:      c.Vision,
		Mission:     mission,
		IsActive:    c.IsActive,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type productView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	SKU           *string   `json:"sku"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discountPrice"`
	Stock         int       `json:"stock"`
	IsActive      bool      `json:"isActive"`
	CompanyName   string    `json:"companyName"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newProductView(p model.Product) productView {
	return productView{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Description:   p.Description,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Stock:         p.Stock,
		IsActive:      p.IsActive,
		CompanyName:   p.CompanyName,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type imageView struct {
	ID         uuid.UUID       `json:"id"`
	URL        string          `json:"url"`
	Filename   string          `json:"filename"`
	MimeType   string          `json:"mimeType"`
	Size       int64           `json:"size"`
	Width      *int            `json:"width,omitempty"`
	Height     *int            `json:"height,omitempty"`
	AltText    string          `json:"altText,omitempty"`
	OwnerType  model.OwnerType `json:"ownerType"`
	OwnerID    uuid.UUID       `json:"ownerId"`
	IsPrimary  bool            `json:"isPrimary"`
	UploadedBy *uuid.UUID      `json:"uploadedBy,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func newImageView(i model.Image) imageView {
	return imageView{
		ID:         i.ID,
		URL:        i.URL,
		Filename:   i.Filename,
		MimeType:   i.MimeType,
		Size:       i.Size,
		Width:      i.Width,
		Height:     i.Height,
		AltText:    i.AltText,
		OwnerType:  i.OwnerType,
		OwnerID:    i.OwnerID,
		IsPrimary:  i.IsPrimary,
		UploadedBy: i.UploadedBy,
		CreatedAt:  i.CreatedAt,
	}
}

func mapViews[T, V any](items []T, fn func(T) V) []V {
	out := make([]V, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
