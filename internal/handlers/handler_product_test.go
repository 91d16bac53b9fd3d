package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
	"github.com/shopward/shopward_backend/internal/handlers"
	"github.com/shopward/shopward_backend/internal/middleware"
	"github.com/shopward/shopward_backend/internal/utils"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	args := m.Called(ctx, filter)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Get(1).(int64), args.Error(2)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, files []*multipart.FileHeader) (*domain.Product, error) {
	args := m.Called(ctx, req, files)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) EditProduct(ctx context.Context, req dto.EditProductRequest) (*domain.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ChangeProductStatus(ctx context.Context, productID string, status domain.ProductStatus) (*domain.Product, error) {
	args := m.Called(ctx, productID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductService) AddProductImages(ctx context.Context, productID string, files []*multipart.FileHeader) error {
	args := m.Called(ctx, productID, files)
	return args.Error(0)
}

func (m *MockProductService) DeleteProductImage(ctx context.Context, imageURL string) error {
	args := m.Called(ctx, imageURL)
	return args.Error(0)
}

var _ portssvc.ProductSvcFacade = (*MockProductService)(nil)

// --- Test Suite ---
type ProductHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockProductSvc *MockProductService
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockProductSvc = new(MockProductService)

	h := handlers.NewProductHandler(suite.mockProductSvc)

	products := suite.router.Group("/products", middleware.AuthMiddleware(testAccessSecret))
	products.POST("", h.CreateProduct)
	products.GET("", h.ListProducts)
	products.GET("/:id", h.GetProductByID)
	products.PUT("", h.EditProduct)
	products.PATCH("/status", h.ChangeProductStatus)
	products.DELETE("/:id", h.DeleteProduct)
	products.POST("/images", h.AddProductImages)
	products.DELETE("/images", h.DeleteProductImage)
}

func (suite *ProductHandlerTestSuite) authHeader() string {
	token, err := utils.GenerateAccessToken("root", string(domain.RoleAdmin), testAccessSecret, "shopward-tests", time.Hour)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *ProductHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		suite.Require().NoError(err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", suite.authHeader())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) doMultipart(path string, fields map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		suite.Require().NoError(mw.WriteField(key, value))
	}
	suite.Require().NoError(mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", suite.authHeader())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- CreateProduct Tests ---

// Missing-field priority: description first, then title, then provider.
func (suite *ProductHandlerTestSuite) TestCreateProduct_MissingDescriptionWinsOverTitle() {
	w := suite.doMultipart("/products", map[string]string{"provider": "acme"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message":"Description is Empty"}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_MissingTitle() {
	w := suite.doMultipart("/products", map[string]string{"description": "d", "provider": "acme"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message":"Title is Empty"}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_DuplicateTitle() {
	suite.mockProductSvc.On("CreateProduct", mock.Anything, mock.AnythingOfType("dto.CreateProductRequest"), mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.doMultipart("/products", map[string]string{"description": "d", "title": "Desk", "provider": "acme"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.JSONEq(`{"message":"This Title already exists"}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestCreateProduct_Success() {
	product := &domain.Product{ProductID: "p1", Title: "Desk"}

	suite.mockProductSvc.On("CreateProduct", mock.Anything, dto.CreateProductRequest{Title: "Desk", Description: "d", Provider: "acme"}, mock.Anything).
		Return(product, nil).Once()

	w := suite.doMultipart("/products", map[string]string{"description": "d", "title": "Desk", "provider": "acme"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"data":"New Product Desk created!"}`, w.Body.String())
}

// --- GetProductByID Tests ---

func (suite *ProductHandlerTestSuite) TestGetProduct_NotFound() {
	suite.mockProductSvc.On("GetProductByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/products/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"message":"no item found"}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestGetProduct_ReducedProjection() {
	product := &domain.Product{
		ProductID:   "p1",
		Title:       "Desk",
		Description: "Oak desk",
		Provider:    "acme",
		Images: []domain.ProductImage{
			{ImageID: "i1", ProductID: "p1", ImageURL: "images/a.png"},
		},
	}

	suite.mockProductSvc.On("GetProductByID", mock.Anything, "p1").Return(product, nil).Once()

	w := suite.doJSON(http.MethodGet, "/products/p1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":{"id":"p1","title":"Desk","description":"Oak desk","productImages":["images/a.png"]}}`, w.Body.String())
}

// --- ListProducts Tests ---

func (suite *ProductHandlerTestSuite) TestListProducts_FilterMapping() {
	suite.mockProductSvc.On("ListProducts", mock.Anything, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.Title == "desk" && f.Status == domain.ProductStatusActive && f.Sort.SortOn == "title"
	})).Return([]domain.Product{}, int64(0), nil).Once()

	w := suite.doJSON(http.MethodGet, "/products?title=desk&productStatus=Active", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":[],"count":0}`, w.Body.String())
}

// --- EditProduct Tests ---

func (suite *ProductHandlerTestSuite) TestEditProduct_MissingID() {
	w := suite.doJSON(http.MethodPut, "/products", gin.H{"title": "Desk"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"message":"id is Empty"}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestEditProduct_Success() {
	product := &domain.Product{ProductID: "p1", Title: "Desk"}

	suite.mockProductSvc.On("EditProduct", mock.Anything, mock.AnythingOfType("dto.EditProductRequest")).Return(product, nil).Once()

	w := suite.doJSON(http.MethodPut, "/products", gin.H{"id": "p1", "title": "Desk"})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":"user by this id : p1 updated"}`, w.Body.String())
}

// --- ChangeProductStatus Tests ---

func (suite *ProductHandlerTestSuite) TestChangeProductStatus_Success() {
	product := &domain.Product{ProductID: "p1", Status: domain.ProductStatusDeactive}

	suite.mockProductSvc.On("ChangeProductStatus", mock.Anything, "p1", domain.ProductStatusDeactive).Return(product, nil).Once()

	w := suite.doJSON(http.MethodPatch, "/products/status", gin.H{"id": "p1", "productStatus": "Deactive"})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":"user by this id : p1 updated!"}`, w.Body.String())
}

// --- DeleteProduct Tests ---

func (suite *ProductHandlerTestSuite) TestDeleteProduct_Success() {
	suite.mockProductSvc.On("DeleteProduct", mock.Anything, "p1").Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/products/p1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"data":"product by this id : p1 deleted"}`, w.Body.String())
}

// --- Product image Tests ---

func (suite *ProductHandlerTestSuite) TestDeleteProductImage_EmptyURL() {
	w := suite.doJSON(http.MethodDelete, "/products/images", gin.H{"imageUrl": ""})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.JSONEq(`{"message":"image url is empty "}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestDeleteProductImage_UnlinkFailure() {
	suite.mockProductSvc.On("DeleteProductImage", mock.Anything, "images/x.png").Return(apperrors.ErrStorage).Once()

	w := suite.doJSON(http.MethodDelete, "/products/images", gin.H{"imageUrl": "images/x.png"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"message":"Error removing the file from the server"}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestDeleteProductImage_Success() {
	suite.mockProductSvc.On("DeleteProductImage", mock.Anything, "images/x.png").Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/products/images", gin.H{"imageUrl": "images/x.png"})

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"message":"Image deleted successfully"}`, w.Body.String())
}

func (suite *ProductHandlerTestSuite) TestAddProductImages_Success() {
	suite.mockProductSvc.On("AddProductImages", mock.Anything, "p1", mock.Anything).Return(nil).Once()

	w := suite.doMultipart("/products/images", map[string]string{"id": "p1"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"data":"image uploaded!"}`, w.Body.String())
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
