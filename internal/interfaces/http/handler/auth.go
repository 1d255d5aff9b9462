package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/hsati/directory-backend/internal/application/identity"
	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/domain/shared"
	"github.com/hsati/directory-backend/internal/interfaces/http/dto"
	"github.com/hsati/directory-backend/internal/interfaces/http/middleware"
)

// AuthHandler serves login and caller-identity endpoints
type AuthHandler struct {
	BaseHandler
	service *identityapp.AuthService
	guard   Guard
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identityapp.AuthService, guard Guard) *AuthHandler {
	return &AuthHandler{service: service, guard: guard}
}

// RegisterRoutes registers auth routes. /my-roles admits any
// authenticated caller; the frontend uses it to decide which admin
// controls to render.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.GET("/my-roles", h.guard(identity.RoleAny), h.MyRoles)
}

// Login exchanges email/password for a session through the identity
// provider. Provider rejections pass through as 401 with the provider's
// own message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, session, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, "Login successful", gin.H{
		"user":    user,
		"session": session,
	})
}

// MyRoles returns the caller's identity and role assignments
func (h *AuthHandler) MyRoles(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.HandleDomainError(c, shared.ErrInternal)
		return
	}
	roles := middleware.CurrentRoles(c)

	h.Success(c, "", gin.H{
		"id":    user.ID,
		"email": user.Email,
		"roles": roles.Strings(),
	})
}
