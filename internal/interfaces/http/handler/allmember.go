package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
)

// AllMemberHandler serves the general member directory endpoints. These
// are the rank-and-file company listings, distinct from the executive
// committee members.
type AllMemberHandler struct {
	BaseHandler
	service *directoryapp.AllMemberService
	guard   Guard
}

// NewAllMemberHandler creates a new AllMemberHandler
func NewAllMemberHandler(service *directoryapp.AllMemberService, guard Guard) *AllMemberHandler {
	return &AllMemberHandler{service: service, guard: guard}
}

// RegisterRoutes registers directory member routes
func (h *AllMemberHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := h.guard(identity.RoleAdmin, identity.RoleSuperAdmin)
	super := h.guard(identity.RoleSuperAdmin)

	rg.POST("/add-all-members", admin, h.Create)
	rg.GET("/get-all-members", h.List)
	rg.PUT("/update-all-members/:id", admin, h.Update)
	rg.DELETE("/delete-all-members/:id", super, h.Delete)
	rg.GET("/get-members-by-industry/:industry_id", h.ByIndustry)
}

// Create adds a directory entry. No field is mandatory; listings are
// often filled in over several edits.
func (h *AllMemberHandler) Create(c *gin.Context) {
	var req directoryapp.AllMemberFields
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	member, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Member added successfully", member)
}

// List returns every directory entry
func (h *AllMemberHandler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", members)
}

// Update modifies a directory entry
func (h *AllMemberHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	var req directoryapp.AllMemberFields
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	member, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Member updated successfully", member)
}

// Delete removes a directory entry
func (h *AllMemberHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Member deleted successfully", nil)
}

// ByIndustry returns directory entries for one industry
func (h *AllMemberHandler) ByIndustry(c *gin.Context) {
	id, ok := idParam(c, "industry_id")
	if !ok {
		h.BadRequest(c, "Invalid industry id")
		return
	}

	members, err := h.service.ByIndustry(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", members)
}
