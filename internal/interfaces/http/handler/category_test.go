package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	directoryapp "github.com/hsati/directory-backend/internal/application/directory"
	"github.com/hsati/directory-backend/internal/domain/directory"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *directory.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]directory.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Category), args.Error(1)
}

// MockMemberCategoryRepository is a mock implementation of MemberCategoryRepository
type MockMemberCategoryRepository struct {
	mock.Mock
}

func (m *MockMemberCategoryRepository) Assign(ctx context.Context, memberIDs []int64, categoryID int64) error {
	args := m.Called(ctx, memberIDs, categoryID)
	return args.Error(0)
}

func (m *MockMemberCategoryRepository) MembersForCategory(ctx context.Context, categoryID int64) ([]directory.AllMember, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.AllMember), args.Error(1)
}

func (m *MockMemberCategoryRepository) CategoriesForMember(ctx context.Context, memberID int64) ([]directory.Category, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Category), args.Error(1)
}

func newCategoryTestEngine(links *MockMemberCategoryRepository) *gin.Engine {
	svc := directoryapp.NewCategoryService(new(MockCategoryRepository), links)
	return newTestEngine(NewCategoryHandler(svc, testGuard(newTestAuth())))
}

func TestAssignCategoriesToMembers(t *testing.T) {
	t.Run("links a batch of members to one category", func(t *testing.T) {
		links := new(MockMemberCategoryRepository)
		links.On("Assign", mock.Anything, []int64{1, 2, 3}, int64(5)).Return(nil)

		engine := newCategoryTestEngine(links)
		w := doRequest(t, engine, http.MethodPost, "/assign-categories-to-members", "admin-token",
			map[string]any{"memberIds": []int64{1, 2, 3}, "categoryId": 5})

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, true, resp["success"])
		links.AssertExpectations(t)
	})

	t.Run("missing category is a 400", func(t *testing.T) {
		links := new(MockMemberCategoryRepository)
		engine := newCategoryTestEngine(links)

		w := doRequest(t, engine, http.MethodPost, "/assign-categories-to-members", "admin-token",
			map[string]any{"memberIds": []int64{1, 2, 3}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		links.AssertNotCalled(t, "Assign")
	})

	t.Run("empty member list is a 400", func(t *testing.T) {
		links := new(MockMemberCategoryRepository)
		engine := newCategoryTestEngine(links)

		w := doRequest(t, engine, http.MethodPost, "/assign-categories-to-members", "admin-token",
			map[string]any{"memberIds": []int64{}, "categoryId": 5})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		links.AssertNotCalled(t, "Assign")
	})

	t.Run("assignment requires an admin role", func(t *testing.T) {
		links := new(MockMemberCategoryRepository)
		engine := newCategoryTestEngine(links)

		w := doRequest(t, engine, http.MethodPost, "/assign-categories-to-members", "plain-token",
			map[string]any{"memberIds": []int64{1}, "categoryId": 5})

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
