package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

// ProductInput is a product as submitted by a client. Products reference
// their company by name.
type ProductInput struct {
	Name          string
	SKU           *string
	Description   string
	Price         float64
	DiscountPrice *float64
	Stock         int
	CompanyName   string
	IsActive      *bool
}

// ProductPatch holds the fields of a partial product update.
type ProductPatch struct {
	Name          *string
	SKU           *string
	Description   *string
	Price         *float64
	DiscountPrice *float64
	Stock         *int
	CompanyName   *string
	IsActive      *bool
}

// ProductQuery filters product listings by company name, status and text.
type ProductQuery struct {
	CompanyName string
	IsActive    *bool
	Search      string
}

type Product struct {
	products  model.ProductStore
	companies model.CompanyStore
	logger    *logger.Logger
}

func NewProduct(products model.ProductStore, companies model.CompanyStore, logger *logger.Logger) *Product {
	return &Product{products: products, companies: companies, logger: logger}
}

func (s *Product) Create(ctx context.Context, in ProductInput, createdBy uuid.UUID) (model.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.CompanyName == "" || in.Price <= 0 {
		return model.Product{}, apperror.NewErrValidation("name, price and companyName are required", nil)
	}
	if err := checkProductNumbers(in.Price, in.DiscountPrice, in.Stock); err != nil {
		return model.Product{}, err
	}

	company, err := s.resolveCompany(ctx, in.CompanyName)
	if err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		Name:          in.Name,
		SKU:           normalizeSKU(in.SKU),
		Description:   in.Description,
		Price:         in.Price,
		DiscountPrice: in.DiscountPrice,
		Stock:         in.Stock,
		CompanyID:     company.ID,
		IsActive:      true,
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	if createdBy != uuid.Nil {
		product.CreatedBy = &createdBy
	}

	saved, err := s.products.Create(ctx, product)
	if err != nil {
		return model.Product{}, mapProductError(err, "create", "company")
	}

	s.logger.Info("Product service: product created",
		"product_id", saved.ID,
		"company_id", saved.CompanyID)
	return saved, nil
}

func (s *Product) List(ctx context.Context, q ProductQuery) ([]model.Product, error) {
	filter := model.ProductFilter{IsActive: q.IsActive, Search: q.Search}
	if q.CompanyName != "" {
		company, err := s.resolveCompany(ctx, q.CompanyName)
		if err != nil {
			return nil, err
		}
		filter.CompanyID = &company.ID
	}
	return s.products.List(ctx, filter)
}

func (s *Product) Get(ctx context.Context, id uuid.UUID) (model.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Product{}, apperror.NewErrNotFound("product")
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *Product) Update(ctx context.Context, id uuid.UUID, patch ProductPatch) (model.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return model.Product{}, err
	}

	if patch.CompanyName != nil {
		company, err := s.resolveCompany(ctx, *patch.CompanyName)
		if err != nil {
			return model.Product{}, err
		}
		product.CompanyID = company.ID
		product.CompanyName = company.Name
	}
	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.SKU != nil {
		product.SKU = normalizeSKU(patch.SKU)
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.DiscountPrice != nil {
		product.DiscountPrice = patch.DiscountPrice
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.IsActive != nil {
		product.IsActive = *patch.IsActive
	}

	if product.Name == "" {
		return model.Product{}, apperror.NewErrValidation("name must not be empty", nil)
	}
	if err := checkProductNumbers(product.Price, product.DiscountPrice, product.Stock); err != nil {
		return model.Product{}, err
	}

	saved, err := s.products.Update(ctx, product)
	if err != nil {
		return model.Product{}, mapProductError(err, "update", "product")
	}
	return saved, nil
}

func (s *Product) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperror.NewErrNotFound("product")
	}
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *Product) resolveCompany(ctx context.Context, name string) (model.Company, error) {
	company, err := s.companies.GetByName(ctx, strings.TrimSpace(name))
	if errors.Is(err, model.ErrNotFound) {
		return model.Company{}, apperror.NewErrNotFound("company")
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to get company by name: %w", err)
	}
	return company, nil
}

func checkProductNumbers(price float64, discount *float64, stock int) error {
	fields := map[string]string{}
	if price < 0 {
		fields["price"] = "price must not be negative"
	}
	if discount != nil && *discount < 0 {
		fields["discountPrice"] = "discountPrice must not be negative"
	}
	if stock < 0 {
		fields["stock"] = "stock must not be negative"
	}
	if len(fields) > 0 {
		return apperror.NewErrValidation("invalid product", fields)
	}
	return nil
}

func normalizeSKU(sku *string) *string {
	if sku == nil {
		return nil
	}
	v := strings.TrimSpace(*sku)
	if v == "" {
		return nil
	}
	return &v
}

// mapProductError translates store errors. missing names the resource a
// model.ErrNotFound refers to for the given operation.
func mapProductError(err error, op, missing string) error {
	switch {
	case errors.Is(err, model.ErrAlreadyExists):
		return apperror.NewErrConflict("product sku is already in use")
	case errors.Is(err, model.ErrNotFound):
		return apperror.NewErrNotFound(missing)
	default:
		return fmt.Errorf("failed to %s product: %w", op, err)
	}
}
