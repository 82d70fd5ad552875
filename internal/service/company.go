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

// CompanyPatch holds the fields of a partial company update. Nil fields are
// left unchanged.
type CompanyPatch struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *model.Address
	Location    *model.Location
	Industry    *string
	Description *string
	Vision      *string
	Mission     []string
	IsActive    *bool
}

type Company struct {
	store  model.CompanyStore
	logger *logger.Logger
}

func NewCompany(store model.CompanyStore, logger *logger.Logger) *Company {
	return &Company{store: store, logger: logger}
}

func (s *Company) Create(ctx context.Context, company model.Company, createdBy uuid.UUID) (model.Company, error) {
	company.Name = strings.TrimSpace(company.Name)
	company.Email = model.NormalizeEmail(company.Email)
	if company.Name == "" || company.Email == "" {
		return model.Company{}, apperror.NewErrValidation("name and email are required", nil)
	}
	if company.Address.Country == "" {
		company.Address.Country = model.DefaultCountry
	}
	if createdBy != uuid.Nil {
		company.CreatedBy = &createdBy
	}

	saved, err := s.store.Create(ctx, company)
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.Company{}, apperror.NewErrConflict("company email is already registered")
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	s.logger.Info("Company service: company created",
		"company_id", saved.ID,
		"user_id", createdBy)
	return saved, nil
}

func (s *Company) List(ctx context.Context) ([]model.Company, error) {
	return s.store.List(ctx)
}

func (s *Company) Get(ctx context.Context, id uuid.UUID) (model.Company, error) {
	company, err := s.store.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Company{}, apperror.NewErrNotFound("company")
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *Company) Update(ctx context.Context, id uuid.UUID, patch CompanyPatch) (model.Company, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return model.Company{}, err
	}

	applyCompanyPatch(&company, patch)
	if company.Name == "" || company.Email == "" {
		return model.Company{}, apperror.NewErrValidation("name and email must not be empty", nil)
	}

	saved, err := s.store.Update(ctx, company)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.Company{}, apperror.NewErrNotFound("company")
	case errors.Is(err, model.ErrAlreadyExists):
		return model.Company{}, apperror.NewErrConflict("company email is already registered")
	case err != nil:
		return model.Company{}, fmt.Errorf("failed to update company: %w", err)
	}
	return saved, nil
}

func (s *Company) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperror.NewErrNotFound("company")
	}
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	s.logger.Info("Company service: company deleted",
		"company_id", id)
	return nil
}

func applyCompanyPatch(c *model.Company, p CompanyPatch) {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		c.Email = model.NormalizeEmail(*p.Email)
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Address != nil {
		c.Address = *p.Address
		if c.Address.Country == "" {
			c.Address.Country = model.DefaultCountry
		}
	}
	if p.Location != nil {
		c.Location = p.Location
	}
	if p.Industry != nil {
		c.Industry = *p.Industry
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Vision != nil {
		c.Vision = *p.Vision
	}
	if p.Mission != nil {
		c.Mission = p.Mission
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}
