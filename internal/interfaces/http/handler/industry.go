package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
)

// IndustryHandler serves the industry classification endpoints
type IndustryHandler struct {
	BaseHandler
	service *directoryapp.IndustryService
	guard   Guard
}

// NewIndustryHandler creates a new IndustryHandler
func NewIndustryHandler(service *directoryapp.IndustryService, guard Guard) *IndustryHandler {
	return &IndustryHandler{service: service, guard: guard}
}

// RegisterRoutes registers industry routes
func (h *IndustryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := h.guard(identity.RoleAdmin, identity.RoleSuperAdmin)
	super := h.guard(identity.RoleSuperAdmin)

	rg.POST("/add-industry", admin, h.Create)
	rg.GET("/get-industries", h.List)
	rg.PUT("/update-industry/:id", admin, h.Update)
	rg.DELETE("/delete-industry/:id", super, h.Delete)
}

// Create adds an industry
func (h *IndustryHandler) Create(c *gin.Context) {
	var req directoryapp.CreateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	industry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Industry added successfully", industry)
}

// List returns every industry
func (h *IndustryHandler) List(c *gin.Context) {
	industries, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", industries)
}

// Update modifies an industry's name and/or icon
func (h *IndustryHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid industry id")
		return
	}

	var req directoryapp.UpdateIndustryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	industry, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Industry updated successfully", industry)
}

// Delete removes an industry
func (h *IndustryHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid industry id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Industry deleted successfully", nil)
}
