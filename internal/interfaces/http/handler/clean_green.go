package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
)

// CleanGreenHandler serves the Clean & Green certification card endpoints
type CleanGreenHandler struct {
	BaseHandler
	service *directoryapp.CleanGreenService
	guard   Guard
}

// NewCleanGreenHandler creates a new CleanGreenHandler
func NewCleanGreenHandler(service *directoryapp.CleanGreenService, guard Guard) *CleanGreenHandler {
	return &CleanGreenHandler{service: service, guard: guard}
}

// RegisterRoutes registers clean & green card routes
func (h *CleanGreenHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := h.guard(identity.RoleAdmin, identity.RoleSuperAdmin)
	super := h.guard(identity.RoleSuperAdmin)

	rg.POST("/add-clean", admin, h.Create)
	rg.GET("/get-clean", h.List)
	rg.PUT("/update-clean/:id", admin, h.Update)
	rg.DELETE("/delete-clean/:id", super, h.Delete)
}

// Create adds a card
func (h *CleanGreenHandler) Create(c *gin.Context) {
	var req directoryapp.CreateCleanGreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	card, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Card added successfully", card)
}

// List returns every card
func (h *CleanGreenHandler) List(c *gin.Context) {
	cards, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", cards)
}

// Update modifies a card
func (h *CleanGreenHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid card id")
		return
	}

	var req directoryapp.UpdateCleanGreenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	card, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Card updated successfully", card)
}

// Delete removes a card
func (h *CleanGreenHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid card id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Card deleted successfully", nil)
}
