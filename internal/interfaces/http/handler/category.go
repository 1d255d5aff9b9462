package handler

import (
	"github.com/gin-gonic/gin"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/interfaces/http/dto"
)

// CategoryHandler serves the business category endpoints, including the
// member↔category assignment join.
type CategoryHandler struct {
	BaseHandler
	service *directoryapp.CategoryService
	guard   Guard
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(service *directoryapp.CategoryService, guard Guard) *CategoryHandler {
	return &CategoryHandler{service: service, guard: guard}
}

// RegisterRoutes registers category routes. The two join lookups need any
// authenticated caller; the admin panel uses them behind login.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := h.guard(identity.RoleAdmin, identity.RoleSuperAdmin)
	authed := h.guard(identity.RoleAny)

	rg.GET("/members-categories", h.List)
	rg.POST("/add-categories", admin, h.Create)
	rg.POST("/assign-categories-to-members", admin, h.Assign)
	rg.GET("/members-by-category/:categoryId", authed, h.MembersByCategory)
	rg.GET("/categories-by-member/:memberId", authed, h.CategoriesByMember)
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// Create adds a category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, "Category added successfully", category)
}

// List returns every category
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", categories)
}

// Assign links a batch of directory members to one category. Re-assigning
// an existing pair is a no-op, not an error.
func (h *CategoryHandler) Assign(c *gin.Context) {
	var req dto.AssignCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.Assign(c.Request.Context(), req.MemberIDs, req.CategoryID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Categories assigned successfully", nil)
}

// MembersByCategory returns directory members linked to one category
func (h *CategoryHandler) MembersByCategory(c *gin.Context) {
	id, ok := idParam(c, "categoryId")
	if !ok {
		h.BadRequest(c, "Invalid category id")
		return
	}

	members, err := h.service.MembersByCategory(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", members)
}

// CategoriesByMember returns categories linked to one directory member
func (h *CategoryHandler) CategoriesByMember(c *gin.Context) {
	id, ok := idParam(c, "memberId")
	if !ok {
		h.BadRequest(c, "Invalid member id")
		return
	}

	categories, err := h.service.CategoriesByMember(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, "", categories)
}
