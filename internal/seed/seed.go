// Package seed creates the initial administrator and company.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

// Params describes the records to ensure.
type Params struct {
	AdminName     string
	AdminEmail    string
	AdminPassword string
	CompanyName   string
	CompanyEmail  string
}

// Result reports what exists after a run and whether it was created.
type Result struct {
	Company        model.Company
	CompanyCreated bool
	Admin          model.User
	AdminCreated   bool
}

// Seeder ensures the seed records exist. Running it twice is a no-op.
type Seeder struct {
	users     model.UserStore
	companies model.CompanyStore
	logger    *logger.Logger
}

func NewSeeder(users model.UserStore, companies model.CompanyStore, logger *logger.Logger) *Seeder {
	return &Seeder{users: users, companies: companies, logger: logger}
}

func (s *Seeder) Run(ctx context.Context, p Params) (Result, error) {
	if p.AdminEmail == "" || p.AdminPassword == "" || p.CompanyName == "" || p.CompanyEmail == "" {
		return Result{}, errors.New("seed admin email, admin password, company name and company email are required")
	}

	var res Result

	company, err := s.companies.GetByName(ctx, p.CompanyName)
	switch {
	case err == nil:
		res.Company = company
	case errors.Is(err, model.ErrNotFound):
		company, err = s.companies.Create(ctx, model.Company{
			Name:     p.CompanyName,
			Email:    model.NormalizeEmail(p.CompanyEmail),
			Address:  model.Address{Country: model.DefaultCountry},
			IsActive: true,
		})
		if err != nil {
			return Result{}, fmt.Errorf("failed to create seed company: %w", err)
		}
		res.Company, res.CompanyCreated = company, true
		s.logger.Info("Seed: company created", "company_id", company.ID)
	default:
		return Result{}, fmt.Errorf("failed to get seed company: %w", err)
	}

	email := model.NormalizeEmail(p.AdminEmail)
	admin, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		res.Admin = admin.Sanitized()
	case errors.Is(err, model.ErrNotFound):
		user := model.User{
			Name:      p.AdminName,
			Email:     email,
			CompanyID: &res.Company.ID,
			IsActive:  true,
		}
		if err := user.SetPassword(p.AdminPassword); err != nil {
			return Result{}, fmt.Errorf("failed to set seed admin password: %w", err)
		}
		admin, err = s.users.Create(ctx, user)
		if err != nil {
			return Result{}, fmt.Errorf("failed to create seed admin: %w", err)
		}
		res.Admin, res.AdminCreated = admin.Sanitized(), true
		s.logger.Info("Seed: admin created", "user_id", admin.ID)
	default:
		return Result{}, fmt.Errorf("failed to get seed admin: %w", err)
	}

	return res, nil
}
