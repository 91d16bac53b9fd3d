package services_test

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/core/services"
	"github.com/shopward/shopward_backend/internal/dto"
)

// --- Mock ActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	args := m.Called(ctx, filter)
	var activities []domain.Activity
	if args.Get(0) != nil {
		activities = args.Get(0).([]domain.Activity)
	}
	return activities, args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) DeleteActivity(ctx context.Context, activityID string) error {
	args := m.Called(ctx, activityID)
	return args.Error(0)
}

// --- Test Suite ---
type ActivityServiceTestSuite struct {
	suite.Suite
	mockActivityRepo *MockActivityRepository
	mockFileStore    *MockFileStore
	service          portssvc.ActivitySvcFacade
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.mockFileStore = new(MockFileStore)
	suite.service = services.NewActivityService(suite.mockActivityRepo, suite.mockFileStore)
}

func (suite *ActivityServiceTestSuite) TestCreateActivity_WithoutImage() {
	ctx := context.Background()
	req := dto.CreateActivityRequest{Text: "hello", Provider: "acme"}

	suite.mockActivityRepo.On("SaveActivity", ctx, mock.MatchedBy(func(a domain.Activity) bool {
		return a.Text == "hello" && a.Provider == "acme" && a.ImagePath == "" && a.ActivityID != ""
	})).Return(nil).Once()

	activity, err := suite.service.CreateActivity(ctx, req, nil)

	suite.Require().NoError(err)
	suite.Empty(activity.ImagePath)
	suite.mockActivityRepo.AssertExpectations(suite.T())
	suite.mockFileStore.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything)
}

func (suite *ActivityServiceTestSuite) TestCreateActivity_WithImage() {
	ctx := context.Background()
	req := dto.CreateActivityRequest{Text: "hello", Provider: "acme"}
	file := &multipart.FileHeader{Filename: "pic.png"}

	suite.mockFileStore.On("Save", ctx, file).Return("images/pic-1.png", nil).Once()
	suite.mockActivityRepo.On("SaveActivity", ctx, mock.MatchedBy(func(a domain.Activity) bool {
		return a.ImagePath == "images/pic-1.png"
	})).Return(nil).Once()

	activity, err := suite.service.CreateActivity(ctx, req, file)

	suite.Require().NoError(err)
	suite.Equal("images/pic-1.png", activity.ImagePath)
	suite.mockActivityRepo.AssertExpectations(suite.T())
	suite.mockFileStore.AssertExpectations(suite.T())
}

// A failed move means no row is created.
func (suite *ActivityServiceTestSuite) TestCreateActivity_StoreFailure() {
	ctx := context.Background()
	req := dto.CreateActivityRequest{Text: "hello", Provider: "acme"}
	file := &multipart.FileHeader{Filename: "pic.png"}

	suite.mockFileStore.On("Save", ctx, file).Return("", assert.AnError).Once()

	activity, err := suite.service.CreateActivity(ctx, req, file)

	suite.Require().Error(err)
	suite.Nil(activity)
	suite.ErrorIs(err, apperrors.ErrStorage)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "SaveActivity", mock.Anything, mock.Anything)
	suite.mockFileStore.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestListActivities_PassesFilterThrough() {
	ctx := context.Background()
	filter := domain.ActivityFilter{
		Provider: "acme",
		Sort:     domain.SortSpec{SortOn: "text", Ascending: true},
		Paging:   domain.PageSpec{ItemPerPage: 10, CurrentPage: 2},
	}
	rows := []domain.Activity{{ActivityID: "a1"}, {ActivityID: "a2"}}

	suite.mockActivityRepo.On("ListActivities", ctx, filter).Return(rows, int64(42), nil).Once()

	activities, count, err := suite.service.ListActivities(ctx, filter)

	suite.Require().NoError(err)
	suite.Len(activities, 2)
	suite.Equal(int64(42), count)
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestDeleteActivity_NotFound() {
	ctx := context.Background()

	suite.mockActivityRepo.On("DeleteActivity", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteActivity(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
