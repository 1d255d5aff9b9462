package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
)

// MemberHandler serves the executive committee member endpoints
type MemberHandler struct {
	BaseHandler
	service *directoryapp.MemberService
	guard   Guard
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(service *directoryapp.MemberService, guard Guard) *MemberHandler {
	return &MemberHandler{service: service, guard: guard}
}

// RegisterRoutes registers member routes. Reads are public; mutations need
// admin, deletes superadmin only.
func (h *MemberHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := h.guard(identity.RoleAdmin, identity.RoleSuperAdmin)
	super := h.guard(identity.RoleSuperAdmin)

	rg.POST("/add-member", admin, h.Create)
	rg.GET("/getmembers", h.List)
	rg.GET("/getfrontendmembers", h.ListActive)
	rg.PUT("/toggle-member-active/:id", admin, h.ToggleActive)
	rg.PUT("/update-member/:id", admin, h.Update)
	rg.DELETE("/delete-member/:id", super, h.Delete)
}

// Create adds a committee member. New members start active.
func (h *MemberHandler) Create(c *gin.Context) {
	var req directoryapp.CreateMemberRequest
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

// List returns every committee member
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", members)
}

// ListActive returns only active members, for the public site
func (h *MemberHandler) ListActive(c *gin.Context) {
	members, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", members)
}

type toggleActiveRequest struct {
	Active *bool `json:"active"`
}

// ToggleActive flips a member's visibility on the public site. The body
// must carry a real boolean; {"active": "yes"} is a 400.
func (h *MemberHandler) ToggleActive(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	var req toggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		h.BadRequest(c, "active must be a boolean")
		return
	}

	member, err := h.service.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Member status updated successfully", member)
}

// Update modifies a committee member
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	var req directoryapp.UpdateMemberRequest
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

// Delete removes a committee member. Responds 200 whether or not the row
// existed.
func (h *MemberHandler) Delete(c *gin.Context) {
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
