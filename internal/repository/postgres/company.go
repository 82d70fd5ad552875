package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/catalog-server/internal/model"
)

var _ model.CompanyStore = (*CompanyRepository)(nil)

type CompanyRepository struct {
	db DB
}

func NewCompanyRepository(db DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

const companyColumns = `id, name, email, phone, address, location, industry, description, vision, mission,
        is_active, created_by, created_at, updated_at`

func scanCompany(row scanner) (model.Company, error) {
	var c model.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.Location, &c.Industry,
		&c.Description, &c.Vision, &c.Mission, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *CompanyRepository) Create(ctx context.Context, c model.Company) (model.Company, error) {
	query := `
        INSERT INTO companies (id, name, email, phone, address, location, industry, description, vision, mission,
            is_active, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
        RETURNING ` + companyColumns

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Mission == nil {
		c.Mission = []string{}
	}

	saved, err := scanCompany(r.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Location, c.Industry,
		c.Description, c.Vision, c.Mission, c.IsActive, c.CreatedBy,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return model.Company{}, model.ErrAlreadyExists
		}
		return model.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return saved, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	c, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, model.ErrNotFound
		}
		return model.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}
	return c, nil
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1 ORDER BY created_at LIMIT 1`

	c, err := scanCompany(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, model.ErrNotFound
		}
		return model.Company{}, fmt.Errorf("failed to get company by name: %w", err)
	}
	return c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []model.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c model.Company) (model.Company, error) {
	query := `
        UPDATE companies SET name = $2, email = $3, phone = $4, address = $5, location = $6, industry = $7,
            description = $8, vision = $9, mission = $10, is_active = $11, updated_at = NOW()
        WHERE id = $1
        RETURNING ` + companyColumns

	if c.Mission == nil {
		c.Mission = []string{}
	}

	saved, err := scanCompany(r.db.QueryRow(ctx, query,
		c.ID, c.Name, c.Email, c.Phone, c.Address, c.Location, c.Industry,
		c.Description, c.Vision, c.Mission, c.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Company{}, model.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Company{}, model.ErrAlreadyExists
		}
		return model.Company{}, fmt.Errorf("failed to update company: %w", err)
	}
	return saved, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
