package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) GetUser(ctx context.Context, accessToken string) (*identity.User, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

type MockPasswordAuthenticator struct {
	mock.Mock
}

func (m *MockPasswordAuthenticator) SignInWithPassword(ctx context.Context, email, password string) (*identity.User, *identity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*identity.User), args.Get(1).(*identity.Session), args.Error(2)
}

type MockUserRoleRepository struct {
	mock.Mock
}

func (m *MockUserRoleRepository) RolesForUser(ctx context.Context, userID string) (identity.RoleSet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(identity.RoleSet), args.Error(1)
}

func TestAuthServiceVerify(t *testing.T) {
	t.Run("resolves user and roles from a bearer token", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		roles := new(MockUserRoleRepository)
		svc := NewAuthService(verifier, nil, roles)

		verifier.On("GetUser", mock.Anything, "tok-123").
			Return(&identity.User{ID: "u-1", Email: "admin@example.com"}, nil)
		roles.On("RolesForUser", mock.Anything, "u-1").
			Return(identity.RoleSet{identity.RoleAdmin}, nil)

		user, roleSet, err := svc.Verify(context.Background(), "Bearer tok-123")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.True(t, roleSet.Contains(identity.RoleAdmin))
	})

	t.Run("rejects malformed Authorization headers", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		roles := new(MockUserRoleRepository)
		svc := NewAuthService(verifier, nil, roles)

		for _, header := range []string{"", "tok-123", "Bearer", "Bearer ", "bearer tok-123"} {
			_, _, err := svc.Verify(context.Background(), header)
			var derr *shared.DomainError
			require.ErrorAs(t, err, &derr, "header %q", header)
			assert.Equal(t, shared.CodeUnauthenticated, derr.Code)
		}
		verifier.AssertNotCalled(t, "GetUser")
	})

	t.Run("provider rejection passes through", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		roles := new(MockUserRoleRepository)
		svc := NewAuthService(verifier, nil, roles)

		verifier.On("GetUser", mock.Anything, "stale").Return(nil, shared.ErrUnauthenticated)

		_, _, err := svc.Verify(context.Background(), "Bearer stale")
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
		roles.AssertNotCalled(t, "RolesForUser")
	})

	t.Run("role lookup failure is a dependency error not a 401", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		roles := new(MockUserRoleRepository)
		svc := NewAuthService(verifier, nil, roles)

		verifier.On("GetUser", mock.Anything, "tok-123").
			Return(&identity.User{ID: "u-1"}, nil)
		roles.On("RolesForUser", mock.Anything, "u-1").
			Return(nil, errors.New("connection refused"))

		_, _, err := svc.Verify(context.Background(), "Bearer tok-123")
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeDependency, derr.Code)
	})

	t.Run("a user with no rows gets an empty role set", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		roles := new(MockUserRoleRepository)
		svc := NewAuthService(verifier, nil, roles)

		verifier.On("GetUser", mock.Anything, "tok-123").
			Return(&identity.User{ID: "u-2"}, nil)
		roles.On("RolesForUser", mock.Anything, "u-2").
			Return(identity.RoleSet{}, nil)

		_, roleSet, err := svc.Verify(context.Background(), "Bearer tok-123")
		require.NoError(t, err)
		assert.Empty(t, roleSet)
		assert.False(t, roleSet.Intersects(identity.RoleAdmin, identity.RoleSuperAdmin))
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("requires both credentials", func(t *testing.T) {
		svc := NewAuthService(new(MockTokenVerifier), new(MockPasswordAuthenticator), new(MockUserRoleRepository))

		_, _, err := svc.Login(context.Background(), "admin@example.com", "")
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeValidation, derr.Code)
	})

	t.Run("fails cleanly when no provider is configured", func(t *testing.T) {
		svc := NewAuthService(new(MockTokenVerifier), nil, new(MockUserRoleRepository))

		_, _, err := svc.Login(context.Background(), "admin@example.com", "secret")
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeDependency, derr.Code)
	})

	t.Run("relays the password grant", func(t *testing.T) {
		auth := new(MockPasswordAuthenticator)
		svc := NewAuthService(new(MockTokenVerifier), auth, new(MockUserRoleRepository))

		auth.On("SignInWithPassword", mock.Anything, "admin@example.com", "secret").
			Return(&identity.User{ID: "u-1"}, &identity.Session{AccessToken: "tok"}, nil)

		user, session, err := svc.Login(context.Background(), "admin@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "tok", session.AccessToken)
	})
}
