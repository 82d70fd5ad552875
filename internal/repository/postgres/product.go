package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/catalog-server/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db DB
}

func NewProductRepository(db DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// productSelect joins the company so responses carry the company name.
const productSelect = `
        SELECT p.id, p.name, p.sku, p.description, p.price, p.discount_price, p.stock, p.company_id,
            c.name, p.is_active, p.created_by, p.created_at, p.updated_at`

func scanProduct(row scanner) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.DiscountPrice, &p.Stock, &p.CompanyID,
		&p.CompanyName, &p.IsActive, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *ProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	query := `
        WITH p AS (
            INSERT INTO products (id, name, sku, description, price, discount_price, stock, company_id,
                is_active, created_by, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
            RETURNING *
        )` + productSelect + `
        FROM p JOIN companies c ON c.id = p.company_id`

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	saved, err := scanProduct(r.db.QueryRow(ctx, query,
		p.ID, p.Name, p.SKU, p.Description, p.Price, p.DiscountPrice, p.Stock, p.CompanyID,
		p.IsActive, p.CreatedBy,
	))
	if err != nil {
		return model.Product{}, mapProductWriteError(err, "create")
	}
	return saved, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	query := productSelect + `
        FROM products p JOIN companies c ON c.id = p.company_id
        WHERE p.id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, fmt.Errorf("failed to get product by id: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var (
		conds []string
		args  []any
	)
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conds = append(conds, fmt.Sprintf("p.company_id = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conds = append(conds, fmt.Sprintf("p.is_active = $%d", len(args)))
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		args = append(args, s)
		conds = append(conds, fmt.Sprintf(
			"to_tsvector('simple', p.name || ' ' || p.description) @@ plainto_tsquery('simple', $%d)", len(args)))
	}

	var b strings.Builder
	b.WriteString(productSelect)
	b.WriteString(`
        FROM products p JOIN companies c ON c.id = p.company_id`)
	if len(conds) > 0 {
		b.WriteString("\n        WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString("\n        ORDER BY p.created_at DESC")

	rows, err := r.db.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	query := `
        WITH p AS (
            UPDATE products SET name = $2, sku = $3, description = $4, price = $5, discount_price = $6,
                stock = $7, company_id = $8, is_active = $9, updated_at = NOW()
            WHERE id = $1
            RETURNING *
        )` + productSelect + `
        FROM p JOIN companies c ON c.id = p.company_id`

	saved, err := scanProduct(r.db.QueryRow(ctx, query,
		p.ID, p.Name, p.SKU, p.Description, p.Price, p.DiscountPrice, p.Stock, p.CompanyID, p.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, mapProductWriteError(err, "update")
	}
	return saved, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func mapProductWriteError(err error, op string) error {
	switch {
	case isUniqueViolation(err):
		return model.ErrAlreadyExists
	case isForeignKeyViolation(err):
		return model.ErrNotFound
	default:
		return fmt.Errorf("failed to %s product: %w", op, err)
	}
}
