package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
)

const (
	MaxImageSize      = 5 << 20
	MaxImagesPerBatch = 10
)

// UploadFile is one file of an upload batch.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.ReadSeeker
}

// UploadParams describes an upload batch for one owner.
type UploadParams struct {
	OwnerType  model.OwnerType
	OwnerID    uuid.UUID
	UploadedBy uuid.UUID
	Files      []UploadFile
}

type Image struct {
	images    model.ImageStore
	companies model.CompanyStore
	products  model.ProductStore
	users     model.UserStore
	storage   model.Storage
	logger    *logger.Logger
}

func NewImage(
	images model.ImageStore,
	companies model.CompanyStore,
	products model.ProductStore,
	users model.UserStore,
	storage model.Storage,
	logger *logger.Logger,
) *Image {
	return &Image{
		images:    images,
		companies: companies,
		products:  products,
		users:     users,
		storage:   storage,
		logger:    logger,
	}
}

// Upload stores every file on the media host and records it. The first file
// of the batch becomes the owner's primary image.
func (s *Image) Upload(ctx context.Context, params UploadParams) ([]model.Image, error) {
	if err := validateUpload(params); err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, params.OwnerType, params.OwnerID); err != nil {
		return nil, err
	}

	var uploadedBy *uuid.UUID
	if params.UploadedBy != uuid.Nil {
		uploadedBy = &params.UploadedBy
	}

	images := make([]model.Image, 0, len(params.Files))
	for i, f := range params.Files {
		img, err := s.store(ctx, params.OwnerType, params.OwnerID, uploadedBy, f)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			img, err = s.images.SetPrimary(ctx, img.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to set primary image: %w", err)
			}
		}
		images = append(images, img)
	}

	s.logger.Info("Image service: images uploaded",
		"owner_type", params.OwnerType,
		"owner_id", params.OwnerID,
		"count", len(images))
	return images, nil
}

func (s *Image) store(ctx context.Context, ownerType model.OwnerType, ownerID uuid.UUID, uploadedBy *uuid.UUID, f UploadFile) (model.Image, error) {
	id := uuid.New()
	key := objectKey(ownerType, id, f.Filename)
	width, height := decodeDimensions(f.Content)

	if err := s.storage.Upload(ctx, key, f.ContentType, f.Content, f.Size); err != nil {
		s.logger.Error("Image service: failed to upload object",
			"key", key,
			"error", err.Error())
		return model.Image{}, fmt.Errorf("failed to upload image: %w", err)
	}

	img, err := s.images.Create(ctx, model.Image{
		ID:         id,
		URL:        s.storage.URL(key),
		ObjectKey:  key,
		Filename:   f.Filename,
		MimeType:   f.ContentType,
		Size:       f.Size,
		Width:      width,
		Height:     height,
		OwnerType:  ownerType,
		OwnerID:    ownerID,
		IsActive:   true,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Image service: failed to remove orphaned object",
				"key", key,
				"error", delErr.Error())
		}
		return model.Image{}, fmt.Errorf("failed to create image: %w", err)
	}
	return img, nil
}

func (s *Image) List(ctx context.Context, ownerType model.OwnerType, ownerID uuid.UUID) ([]model.Image, error) {
	if !ownerType.Valid() || ownerID == uuid.Nil {
		return nil, apperror.NewErrValidation("ownerType and ownerId are required", nil)
	}
	return s.images.ListByOwner(ctx, ownerType, ownerID)
}

func (s *Image) Get(ctx context.Context, id uuid.UUID) (model.Image, error) {
	img, err := s.images.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Image{}, apperror.NewErrNotFound("image")
	}
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to get image: %w", err)
	}
	return img, nil
}

// Open returns the image record and a reader over its content. The caller
// closes the reader.
func (s *Image) Open(ctx context.Context, id uuid.UUID) (model.Image, io.ReadCloser, error) {
	img, err := s.Get(ctx, id)
	if err != nil {
		return model.Image{}, nil, err
	}

	rc, err := s.storage.Download(ctx, img.ObjectKey)
	if errors.Is(err, model.ErrNotFound) {
		return model.Image{}, nil, apperror.NewErrNotFound("image content")
	}
	if err != nil {
		return model.Image{}, nil, fmt.Errorf("failed to download image: %w", err)
	}
	return img, rc, nil
}

func (s *Image) SetPrimary(ctx context.Context, id uuid.UUID) (model.Image, error) {
	img, err := s.images.SetPrimary(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Image{}, apperror.NewErrNotFound("image")
	}
	if err != nil {
		return model.Image{}, fmt.Errorf("failed to set primary image: %w", err)
	}
	return img, nil
}

// Delete removes the object from the media host, then the record.
func (s *Image) Delete(ctx context.Context, id uuid.UUID) error {
	img, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, img.ObjectKey); err != nil {
		return fmt.Errorf("failed to delete image object: %w", err)
	}

	err = s.images.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apperror.NewErrNotFound("image")
	}
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	s.logger.Info("Image service: image deleted",
		"image_id", id)
	return nil
}

func (s *Image) checkOwner(ctx context.Context, ownerType model.OwnerType, ownerID uuid.UUID) error {
	var err error
	switch ownerType {
	case model.OwnerCompany:
		_, err = s.companies.GetByID(ctx, ownerID)
	case model.OwnerProduct:
		_, err = s.products.GetByID(ctx, ownerID)
	case model.OwnerUser:
		_, err = s.users.GetByID(ctx, ownerID)
	}
	if errors.Is(err, model.ErrNotFound) {
		return apperror.NewErrNotFound(strings.ToLower(string(ownerType)))
	}
	if err != nil {
		return fmt.Errorf("failed to get image owner: %w", err)
	}
	return nil
}

func validateUpload(params UploadParams) error {
	if !params.OwnerType.Valid() {
		return apperror.NewErrValidation("invalid ownerType",
			map[string]string{"ownerType": "must be one of Company, User, Product"})
	}
	if params.OwnerID == uuid.Nil {
		return apperror.NewErrValidation("ownerId is required", nil)
	}
	if len(params.Files) == 0 {
		return apperror.NewErrValidation("at least one file is required", nil)
	}
	if len(params.Files) > MaxImagesPerBatch {
		return apperror.NewErrValidation(fmt.Sprintf("at most %d files per upload", MaxImagesPerBatch), nil)
	}
	for _, f := range params.Files {
		if !strings.HasPrefix(f.ContentType, "image/") {
			return apperror.NewErrValidation("file must be an image",
				map[string]string{"files": f.Filename})
		}
		if f.Size > MaxImageSize {
			return apperror.NewErrValidation("file exceeds 5 MiB",
				map[string]string{"files": f.Filename})
		}
	}
	return nil
}

// objectKey places objects in a folder per owner type.
func objectKey(ownerType model.OwnerType, id uuid.UUID, filename string) string {
	return strings.ToLower(string(ownerType)) + "/" + id.String() + strings.ToLower(filepath.Ext(filename))
}

// decodeDimensions reads the image header and rewinds the reader. Unknown
// formats yield nil dimensions.
func decodeDimensions(r io.ReadSeeker) (*int, *int) {
	cfg, _, err := image.DecodeConfig(r)
	if _, seekErr := r.Seek(0, io.SeekStart); seekErr != nil || err != nil {
		return nil, nil
	}
	return &cfg.Width, &cfg.Height
}
