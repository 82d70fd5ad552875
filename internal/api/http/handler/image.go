package handler

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/service"
	"github.com/google/uuid"
)

const multipartMemory = 8 << 20

// ImageService defines image management operations.
type ImageService interface {
	Upload(ctx context.Context, params service.UploadParams) ([]model.Image, error)
	List(ctx context.Context, ownerType model.OwnerType, ownerID uuid.UUID) ([]model.Image, error)
	Open(ctx context.Context, id uuid.UUID) (model.Image, io.ReadCloser, error)
	SetPrimary(ctx context.Context, id uuid.UUID) (model.Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Image handles HTTP endpoints for images.
type Image struct {
	errorHandler
	imageService   ImageService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewImage creates a new Image handler.
func NewImage(imageService ImageService, contextManager model.ContextManager, logger *logger.Logger, exposeErrors bool) *Image {
	return &Image{
		errorHandler:   errorHandler{logger: logger, exposeErrors: exposeErrors},
		imageService:   imageService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Upload accepts a multipart form with ownerType, ownerId and one or more files.
func (h *Image) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.handleError(w, r, apperror.NewErrValidation("request body is too large", nil))
			return
		}
		h.handleError(w, r, apperror.NewErrValidation("invalid multipart form", nil))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	ownerID, err := uuid.Parse(r.FormValue("ownerId"))
	if err != nil {
		h.handleError(w, r, apperror.NewErrValidation("invalid ownerId",
			map[string]string{"ownerId": "must be a valid UUID"}))
		return
	}

	headers := r.MultipartForm.File["files"]
	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		defer f.Close()
		files = append(files, uploadFile(fh, f))
	}

	userID, _ := h.contextManager.GetUserIDFromContext(r.Context())
	images, err := h.imageService.Upload(r.Context(), service.UploadParams{
		OwnerType:  model.OwnerType(r.FormValue("ownerType")),
		OwnerID:    ownerID,
		UploadedBy: userID,
		Files:      files,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	total := len(images)
	response.JSON(w, http.StatusCreated, response.Envelope{
		Message: "images uploaded",
		Data:    mapViews(images, newImageView),
		Total:   &total,
	})
}

func uploadFile(fh *multipart.FileHeader, f multipart.File) service.UploadFile {
	return service.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}
}

func (h *Image) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(r.URL.Query().Get("ownerId"))
	if err != nil {
		h.handleError(w, r, apperror.NewErrValidation("invalid ownerId",
			map[string]string{"ownerId": "must be a valid UUID"}))
		return
	}

	images, err := h.imageService.List(r.Context(), model.OwnerType(r.URL.Query().Get("ownerType")), ownerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.List(w, "images", mapViews(images, newImageView), len(images))
}

// Content streams the image bytes from the media host.
func (h *Image) Content(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	image, body, err := h.imageService.Open(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", image.MimeType)
	if image.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(image.Size, 10))
	}
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		h.logger.Warn("Image handler: content stream interrupted",
			"image_id", id,
			"error", err.Error())
	}
}

func (h *Image) SetPrimary(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	image, err := h.imageService.SetPrimary(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "primary image updated", newImageView(image))
}

func (h *Image) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.imageService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "image deleted", nil)
}
