package identity

import (
	"context"
	"strings"

	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// AuthService verifies bearer credentials and relays password logins. Role
// assignments are read fresh on every verification; a role granted or
// revoked mid-session takes effect on the caller's next request.
type AuthService struct {
	verifier      identity.TokenVerifier
	authenticator identity.PasswordAuthenticator
	roles         identity.UserRoleRepository
}

// NewAuthService creates a new AuthService. authenticator may be nil when
// the deployment verifies tokens locally and has no login relay.
func NewAuthService(
	verifier identity.TokenVerifier,
	authenticator identity.PasswordAuthenticator,
	roles identity.UserRoleRepository,
) *AuthService {
	return &AuthService{
		verifier:      verifier,
		authenticator: authenticator,
		roles:         roles,
	}
}

// Verify resolves an Authorization header to a user and their roles.
// The header must be exactly "Bearer <token>". Provider rejections come
// back as unauthenticated; a role-lookup failure is a dependency error,
// since the token itself was fine.
func (s *AuthService) Verify(ctx context.Context, authorization string) (*identity.User, identity.RoleSet, error) {
	token, ok := bearerToken(authorization)
	if !ok {
		return nil, nil, shared.NewDomainError(shared.CodeUnauthenticated, "Missing or malformed Authorization header")
	}

	user, err := s.verifier.GetUser(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	roles, err := s.roles.RolesForUser(ctx, user.ID)
	if err != nil {
		return nil, nil, shared.NewDependencyError("role lookup", err)
	}

	return user, roles, nil
}

// Login performs the password grant through the identity provider
func (s *AuthService) Login(ctx context.Context, email, password string) (*identity.User, *identity.Session, error) {
	if email == "" || password == "" {
		return nil, nil, shared.NewValidationError("email and password are required")
	}
	if s.authenticator == nil {
		return nil, nil, shared.NewDomainError(shared.CodeDependency, "login is not available: no identity provider configured")
	}
	return s.authenticator.SignInWithPassword(ctx, email, password)
}

// bearerToken extracts the token from a "Bearer <token>" header
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
