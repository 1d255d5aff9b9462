package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
)

// CircularHandler serves the circular notice endpoints
type CircularHandler struct {
	BaseHandler
	service *directoryapp.CircularService
	guard   Guard
}

// NewCircularHandler creates a new CircularHandler
func NewCircularHandler(service *directoryapp.CircularService, guard Guard) *CircularHandler {
	return &CircularHandler{service: service, guard: guard}
}

// RegisterRoutes registers circular routes
func (h *CircularHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := h.guard(identity.RoleAdmin, identity.RoleSuperAdmin)
	super := h.guard(identity.RoleSuperAdmin)

	rg.POST("/add-circular", admin, h.Create)
	rg.GET("/getcirculars", h.List)
	rg.PUT("/update-circular/:id", admin, h.Update)
	rg.DELETE("/delete-circular/:id", super, h.Delete)
}

// Create adds a circular
func (h *CircularHandler) Create(c *gin.Context) {
	var req directoryapp.CreateCircularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	circular, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Circular added successfully", circular)
}

// List returns every circular
func (h *CircularHandler) List(c *gin.Context) {
	circulars, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", circulars)
}

// Update modifies a circular
func (h *CircularHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid circular id")
		return
	}

	var req directoryapp.UpdateCircularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	circular, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Circular updated successfully", circular)
}

// Delete removes a circular
func (h *CircularHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid circular id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Circular deleted successfully", nil)
}
