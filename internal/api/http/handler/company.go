package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/catalog-server/internal/api/http/response"
	"github.com/dtroode/catalog-server/internal/logger"
	"github.com/dtroode/catalog-server/internal/model"
	"github.com/dtroode/catalog-server/internal/service"
	"github.com/google/uuid"
)

// CompanyService defines company management operations.
type CompanyService interface {
	Create(ctx context.Context, company model.Company, createdBy uuid.UUID) (model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
	Get(ctx context.Context, id uuid.UUID) (model.Company, error)
	Update(ctx context.Context, id uuid.UUID, patch service.CompanyPatch) (model.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Company handles HTTP endpoints for companies.
type Company struct {
	errorHandler
	companyService CompanyService
	contextManager model.ContextManager
}

// NewCompany creates a new Company handler.
func NewCompany(companyService CompanyService, contextManager model.ContextManager, logger *logger.Logger, exposeErrors bool) *Company {
	return &Company{
		errorHandler:   errorHandler{logger: logger, exposeErrors: exposeErrors},
		companyService: companyService,
		contextManager: contextManager,
	}
}

func (h *Company) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	company := model.Company{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Industry:    req.Industry,
		Description: req.Description,
		Vision:      req.Vision,
		Mission:     req.Mission,
		IsActive:    true,
	}
	if req.Address != nil {
		company.Address = req.Address.toModel()
	}
	if req.Location != nil {
		company.Location = &model.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	userID, _ := h.contextManager.GetUserIDFromContext(r.Context())
	created, err := h.companyService.Create(r.Context(), company, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusCreated, "company created", newCompanyView(created))
}

func (h *Company) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.List(w, "companies", mapViews(companies, newCompanyView), len(companies))
}

func (h *Company) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	company, err := h.companyService.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "company", newCompanyView(company))
}

func (h *Company) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req updateCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	patch := service.CompanyPatch{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Industry:    req.Industry,
		Description: req.Description,
		Vision:      req.Vision,
		Mission:     req.Mission,
		IsActive:    req.IsActive,
	}
	if req.Address != nil {
		addr := req.Address.toModel()
		patch.Address = &addr
	}
	if req.Location != nil {
		patch.Location = &model.Location{Lat: req.Location.Lat, Lng: req.Location.Lng}
	}

	company, err := h.companyService.Update(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "company updated", newCompanyView(company))
}

func (h *Company) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	if err := h.companyService.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	response.OK(w, http.StatusOK, "company deleted", nil)
}
