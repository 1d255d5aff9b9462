package identity

import "context"

// User is the caller identity resolved from the identity provider. The
// provider owns the account; only the fields the backend needs are kept.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session holds the tokens the provider issues on a successful password
// grant. The frontend stores AccessToken and sends it back as a bearer.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// UserRoleRepository resolves the role assignments of a user.
type UserRoleRepository interface {
	RolesForUser(ctx context.Context, userID string) (RoleSet, error)
}

// TokenVerifier exchanges a bearer token with the identity provider for the
// user it belongs to.
type TokenVerifier interface {
	GetUser(ctx context.Context, accessToken string) (*User, error)
}

// PasswordAuthenticator signs a user in with email/password credentials.
type PasswordAuthenticator interface {
	SignInWithPassword(ctx context.Context, email, password string) (*User, *Session, error)
}
