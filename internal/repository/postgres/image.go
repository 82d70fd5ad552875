package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/catalog-server/internal/model"
)

var _ model.ImageStore = (*ImageRepository)(nil)

type ImageRepository struct {
	db DB
}

func NewImageRepository(db DB) *ImageRepository {
	return &ImageRepository{db: db}
}

const imageColumns = `id, url, object_key, filename, mime_type, size, width, height, alt_text, owner_type, owner_id,
        is_primary, is_active, uploaded_by, created_at, updated_at`

func scanImage(row scanner) (model.Image, error) {
	var img model.Image
	err := row.Scan(
		&img.ID, &img.URL, &img.ObjectKey, &img.Filename, &img.MimeType, &img.Size, &img.Width, &img.Height,
		&img.AltText, &img.OwnerType, &img.OwnerID, &img.IsPrimary, &img.IsActive, &img.UploadedBy,
		&img.CreatedAt, &img.UpdatedAt,
	)
	return img, err
}

func (r *ImageRepository) Create(ctx context.Context, img model.Image) (model.Image, error) {
	query := `
        INSERT INTO images (id, url, object_key, filename, mime_type, size, width, height, alt_text, owner_type,
            owner_id, is_primary, is_active, uploaded_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
        RETURNING ` + imageColumns

	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}

	saved, err := scanImage(r.db.QueryRow(ctx, query,
		img.ID, img.URL, img.ObjectKey, img.Filename, img.MimeType, img.Size, img.Width, img.Height,
		img.AltText, img.OwnerType, img.OwnerID, img.IsPrimary, img.IsActive, img.UploadedBy,
	))
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to create image: %w", err)
	}
	return saved, nil
}

func (r *ImageRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images WHERE id = $1`

	img, err := scanImage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Image{}, model.ErrNotFound
		}
		return model.Image{}, fmt.Errorf("failed to get image by id: %w", err)
	}
	return img, nil
}

func (r *ImageRepository) ListByOwner(ctx context.Context, ownerType model.OwnerType, ownerID uuid.UUID) ([]model.Image, error) {
	query := `SELECT ` + imageColumns + ` FROM images
        WHERE owner_type = $1 AND owner_id = $2
        ORDER BY is_primary DESC, created_at`

	rows, err := r.db.Query(ctx, query, ownerType, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	images := []model.Image{}
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate images: %w", err)
	}
	return images, nil
}

func (r *ImageRepository) SetPrimary(ctx context.Context, id uuid.UUID) (model.Image, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var (
		ownerType model.OwnerType
		ownerID   uuid.UUID
	)
	err = tx.QueryRow(ctx, `SELECT owner_type, owner_id FROM images WHERE id = $1 FOR UPDATE`, id).
		Scan(&ownerType, &ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Image{}, model.ErrNotFound
		}
		return model.Image{}, fmt.Errorf("failed to lock image: %w", err)
	}

	_, err = tx.Exec(ctx, `
        UPDATE images SET is_primary = FALSE, updated_at = NOW()
        WHERE owner_type = $1 AND owner_id = $2 AND id <> $3 AND is_primary`,
		ownerType, ownerID, id)
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to clear primary images: %w", err)
	}

	img, err := scanImage(tx.QueryRow(ctx, `
        UPDATE images SET is_primary = TRUE, updated_at = NOW()
        WHERE id = $1
        RETURNING `+imageColumns, id))
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to set primary image: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Image{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return img, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
