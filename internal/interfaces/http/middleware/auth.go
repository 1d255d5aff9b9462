package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	identityapp "github.com/hsati/directory-backend/internal/application/identity"
	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/domain/shared"
	"github.com/hsati/directory-backend/internal/interfaces/http/dto"
)

// Context keys for the authenticated caller
const (
	ContextUserKey  = "current_user"
	ContextRolesKey = "current_roles"
)

// RequireRole verifies the bearer token and checks the caller holds at
// least one of the required roles. Passing identity.RoleAny admits every
// authenticated caller regardless of role rows. Roles are resolved fresh
// on every request; nothing is cached between calls.
func RequireRole(authService *identityapp.AuthService, required ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, roles, err := authService.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			abortWithAuthError(c, err)
			return
		}

		if !roles.Intersects(required...) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "You do not have permission to perform this action"))
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextRolesKey, roles)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireRole
func CurrentUser(c *gin.Context) (*identity.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*identity.User)
	return user, ok
}

// CurrentRoles returns the caller's roles set by RequireRole
func CurrentRoles(c *gin.Context) identity.RoleSet {
	v, ok := c.Get(ContextRolesKey)
	if !ok {
		return identity.RoleSet{}
	}
	roles, ok := v.(identity.RoleSet)
	if !ok {
		return identity.RoleSet{}
	}
	return roles
}

// abortWithAuthError maps a verification failure to its HTTP status.
// A role-lookup failure is a 500, not a 401: the token was valid.
func abortWithAuthError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.AbortWithStatusJSON(dto.GetHTTPStatus(domainErr.Code),
			dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthenticated, "Invalid or expired token"))
}
