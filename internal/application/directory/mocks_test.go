package directory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hsati/directory-backend/internal/domain/directory"
)

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

// MockIndustryRepository is a mock implementation of IndustryRepository
type MockIndustryRepository struct {
	mock.Mock
}

func (m *MockIndustryRepository) Create(ctx context.Context, industry *directory.Industry) error {
	args := m.Called(ctx, industry)
	return args.Error(0)
}

func (m *MockIndustryRepository) FindAll(ctx context.Context) ([]directory.Industry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Industry), args.Error(1)
}

func (m *MockIndustryRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Industry, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Industry), args.Error(1)
}

func (m *MockIndustryRepository) Delete(ctx context.Context, id int64) error {
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

// MockCleanGreenRepository is a mock implementation of CleanGreenRepository
type MockCleanGreenRepository struct {
	mock.Mock
}

func (m *MockCleanGreenRepository) Create(ctx context.Context, card *directory.CleanGreenCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCleanGreenRepository) FindAll(ctx context.Context) ([]directory.CleanGreenCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.CleanGreenCard), args.Error(1)
}

func (m *MockCleanGreenRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.CleanGreenCard, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.CleanGreenCard), args.Error(1)
}

func (m *MockCleanGreenRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCircularRepository is a mock implementation of CircularRepository
type MockCircularRepository struct {
	mock.Mock
}

func (m *MockCircularRepository) Create(ctx context.Context, circular *directory.Circular) error {
	args := m.Called(ctx, circular)
	return args.Error(0)
}

func (m *MockCircularRepository) FindAll(ctx context.Context) ([]directory.Circular, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Circular), args.Error(1)
}

func (m *MockCircularRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Circular, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Circular), args.Error(1)
}

func (m *MockCircularRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *directory.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindAll(ctx context.Context) ([]directory.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]directory.Event), args.Error(1)
}

func (m *MockEventRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*directory.Event, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*directory.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
