package handlers_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
	"github.com/shopward/shopward_backend/internal/handlers"
)

// --- Mock ActivityService ---
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) CreateActivity(ctx context.Context, req dto.CreateActivityRequest, image *multipart.FileHeader) (*domain.Activity, error) {
	args := m.Called(ctx, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *MockActivityService) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	args := m.Called(ctx, filter)
	var activities []domain.Activity
	if args.Get(0) != nil {
		activities = args.Get(0).([]domain.Activity)
	}
	return activities, args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityService) DeleteActivity(ctx context.Context, activityID string) error {
	args := m.Called(ctx, activityID)
	return args.Error(0)
}

var _ portssvc.ActivitySvcFacade = (*MockActivityService)(nil)

// --- Test Suite ---
type ActivityHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockActivitySvc *MockActivityService
}

func (suite *ActivityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockActivitySvc = new(MockActivityService)

	h := handlers.NewActivityHandler(suite.mockActivitySvc)

	activities := suite.router.Group("/activities")
	activities.POST("", h.CreateActivity)
	activities.GET("", h.ListActivities)
	activities.DELETE("/:id", h.DeleteActivity)
}

// postMultipart sends a multipart form with the given fields.
func (suite *ActivityHandlerTestSuite) postMultipart(path string, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		suite.Require().NoError(mw.WriteField(key, value))
	}
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- CreateActivity Tests ---

func (suite *ActivityHandlerTestSuite) TestCreateActivity_MissingText() {
	w := suite.postMultipart("/activities", map[string]string{"provider": "acme"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message":"text is required"}`, w.Body.String())
}

func (suite *ActivityHandlerTestSuite) TestCreateActivity_MissingProvider() {
	w := suite.postMultipart("/activities", map[string]string{"text": "hello"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message":"provider is required"}`, w.Body.String())
}

func (suite *ActivityHandlerTestSuite) TestCreateActivity_Success() {
	activity := &domain.Activity{ActivityID: "abc-123", Text: "hello", Provider: "acme"}

	suite.mockActivitySvc.On("CreateActivity", mock.Anything, dto.CreateActivityRequest{Text: "hello", Provider: "acme"}, (*multipart.FileHeader)(nil)).
		Return(activity, nil).Once()

	w := suite.postMultipart("/activities", map[string]string{"text": "hello", "provider": "acme"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"data":"Activity by this id: abc-123 created"}`, w.Body.String())
}

func (suite *ActivityHandlerTestSuite) TestCreateActivity_StorageFailure() {
	suite.mockActivitySvc.On("CreateActivity", mock.Anything, mock.AnythingOfType("dto.CreateActivityRequest"), (*multipart.FileHeader)(nil)).
		Return(nil, apperrors.ErrStorage).Once()

	w := suite.postMultipart("/activities", map[string]string{"text": "hello", "provider": "acme"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"message":"Server error while saving the image!"}`, w.Body.String())
}

// --- ListActivities Tests ---

func (suite *ActivityHandlerTestSuite) TestListActivities_DefaultsAndCount() {
	rows := []domain.Activity{{ActivityID: "a1", Text: "t", Provider: "p"}}

	suite.mockActivitySvc.On("ListActivities", mock.Anything, mock.MatchedBy(func(f domain.ActivityFilter) bool {
		return f.Provider == "acme" && f.Sort.SortOn == "text" && f.Sort.Ascending &&
			f.Paging.ItemPerPage == 10 && f.Paging.CurrentPage == 2
	})).Return(rows, int64(21), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/activities?provider=acme&itemPerPage=10&currentPage=2", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"count":21`)
}

// --- DeleteActivity Tests ---

func (suite *ActivityHandlerTestSuite) TestDeleteActivity_NotFound() {
	suite.mockActivitySvc.On("DeleteActivity", mock.Anything, "missing").Return(apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodDelete, "/activities/missing", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"error":"activity not found"}`, w.Body.String())
}

func (suite *ActivityHandlerTestSuite) TestDeleteActivity_Success() {
	suite.mockActivitySvc.On("DeleteActivity", mock.Anything, "abc-123").Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/activities/abc-123", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"data":"activity by this id: abc-123 deleted"}`, w.Body.String())
}

func TestActivityHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityHandlerTestSuite))
}
