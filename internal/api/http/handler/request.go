package handler

import "github.com/dtroode/catalog-server/internal/model"

type registerRequest struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6,max=72"`
	CompanyID *string `json:"companyId" validate:"omitempty,uuid"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

type addressDTO struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

func (a addressDTO) toModel() model.Address {
	return model.Address(a)
}

type locationDTO struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type createCompanyRequest struct {
	Name        string       `json:"name" validate:"required,max=200"`
	Email       string       `json:"email" validate:"required,email"`
	Phone       string       `json:"phone" validate:"max=50"`
	Address     *addressDTO  `json:"address"`
	Location    *locationDTO `json:"location"`
	Industry    string       `json:"industry"`
	Description string       `json:"description"`
	Vision      string       `json:"vision"`
	Mission     []string     `json:"mission"`
}

type updateCompanyRequest struct {
	Name        *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Email       *string      `json:"email" validate:"omitempty,email"`
	Phone       *string      `json:"phone" validate:"omitempty,max=50"`
	Address     *addressDTO  `json:"address"`
	Location    *locationDTO `json:"location"`
	Industry    *string      `json:"industry"`
	Description *string      `json:"description"`
	Vision      *string      `json:"vision"`
	Mission     []string     `json:"mission"`
	IsActive    *bool        `json:"isActive"`
}

type createProductRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	SKU           *string  `json:"sku"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	DiscountPrice *float64 `json:"discountPrice" validate:"omitempty,gte=0"`
	Stock         int      `json:"stock" validate:"gte=0"`
	CompanyName   string   `json:"companyName" validate:"required"`
	IsActive      *bool    `json:"isActive"`
}

type updateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	SKU           *string  `json:"sku"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	DiscountPrice *float64 `json:"discountPrice" validate:"omitempty,gte=0"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
	CompanyName   *string  `json:"companyName" validate:"omitempty,min=1"`
	IsActive      *bool    `json:"isActive"`
}
