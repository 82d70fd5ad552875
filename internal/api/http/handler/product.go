package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/apperror"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/service"
	"github.com/google/uuid"
)

// ProductService defines product management operations.
type ProductService interface {
	Create(ctx context.Context, in service.ProductInput, createdBy uuid.UUID) (model.Product, error)
	List(ctx context.Context, q service.ProductQuery) ([]model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch service.ProductPatch) (model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Product handles HTTP endpoints for products.
type Product struct {
	errorHandler
	productService ProductService
	contextManager model.ContextManager
}

// NewProduct creates a new Product handler.
func NewProduct(productService ProductService, contextManager model.ContextManager, logger *logger.Logger, exposeErrors bool) *Product {
	return &Product{
		errorHandler:   errorHandler{logger: logger, exposeErrors: exposeErrors},
		productService: productService,
		contextManager: contextManager,
	}
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	userID, _ := h.contextManager.GetUserIDFromContext(r.Context())
	product, err := h.productService.Create(r.Context(), service.ProductInput{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		Price:         *req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		CompanyName:   req.CompanyName,
		IsActive:      req.IsActive,
	}, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusCreated, "product created", newProductView(product))
}

// List filters by companyName, isActive and a full-text search term.
func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := service.ProductQuery{
		CompanyName: query.Get("companyName"),
		Search:      query.Get("search"),
	}
	if raw := query.Get("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			h.handleError(w, r, apperror.NewErrValidation("invalid isActive",
				map[string]string{"isActive": "must be true or false"}))
			return
		}
		q.IsActive = &active
	}

	products, err := h.productService.List(r.Context(), q)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.List(w, "products", mapViews(products, newProductView), len(products))
}

func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "product", newProductView(product))
}

func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	product, err := h.productService.Update(r.Context(), id, service.ProductPatch{
		Name:          req.Name,
		SKU:           req.SKU,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Stock:         req.Stock,
		CompanyName:   req.CompanyName,
		IsActive:      req.IsActive,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "product updated", newProductView(product))
}

func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "product deleted", nil)
}
