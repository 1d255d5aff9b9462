package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	identityapp "github.com/hsati/directory-backend/internal/application/identity"
	"github.com/hsati/directory-backend/internal/domain/directory"
	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/domain/shared"
	"github.com/hsati/directory-backend/internal/interfaces/http/middleware"
)

// ============================================================================
// Auth fixtures
// ============================================================================

// stubVerifier resolves fixed tokens to fixed users
type stubVerifier struct {
	tokens map[string]*identity.User
}

func (v *stubVerifier) GetUser(_ context.Context, accessToken string) (*identity.User, error) {
	user, ok := v.tokens[accessToken]
	if !ok {
		return nil, shared.ErrUnauthenticated
	}
	return user, nil
}

// stubRoleRepo resolves user IDs to fixed role sets
type stubRoleRepo struct {
	roles map[string]identity.RoleSet
}

func (r *stubRoleRepo) RolesForUser(_ context.Context, userID string) (identity.RoleSet, error) {
	return r.roles[userID], nil
}

// newTestAuth builds an auth service with three known callers:
// admin-token (admin), super-token (superadmin), plain-token (no roles).
func newTestAuth() *identityapp.AuthService {
	verifier := &stubVerifier{tokens: map[string]*identity.User{
		"admin-token": {ID: "u-admin", Email: "admin@example.com"},
		"super-token": {ID: "u-super", Email: "super@example.com"},
		"plain-token": {ID: "u-plain", Email: "plain@example.com"},
	}}
	roles := &stubRoleRepo{roles: map[string]identity.RoleSet{
		"u-admin": {identity.RoleAdmin},
		"u-super": {identity.RoleSuperAdmin},
		"u-plain": {},
	}}
	return identityapp.NewAuthService(verifier, nil, roles)
}

func testGuard(svc *identityapp.AuthService) Guard {
	return func(required ...identity.Role) gin.HandlerFunc {
		return middleware.RequireRole(svc, required...)
	}
}

// ============================================================================
// HTTP helpers
// ============================================================================

type routeRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

func newTestEngine(handlers ...routeRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	root := engine.Group("")
	for _, h := range handlers {
		h.RegisterRoutes(root)
	}
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ============================================================================
// Repository mocks
// ============================================================================

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *directory.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindAll(ctx context.Context) ([]directory.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Member), args.Error(1)
}

func (m *MockMemberRepository) FindActive(ctx context.Context) ([]directory.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id int64) (*directory.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Member), args.Error(1)
}

func (m *MockMemberRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Member, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Member), args.Error(1)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAllMemberRepository is a mock implementation of AllMemberRepository
type MockAllMemberRepository struct {
	mock.Mock
}

func (m *MockAllMemberRepository) Create(ctx context.Context, member *directory.AllMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockAllMemberRepository) FindAll(ctx context.Context) ([]directory.AllMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.AllMember), args.Error(1)
}

func (m *MockAllMemberRepository) FindByIndustry(ctx context.Context, industryID int64) ([]directory.AllMember, error) {
	args := m.Called(ctx, industryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.AllMember), args.Error(1)
}

func (m *MockAllMemberRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.AllMember, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.AllMember), args.Error(1)
}

func (m *MockAllMemberRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
