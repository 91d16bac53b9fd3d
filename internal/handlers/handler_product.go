package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
)

// ProductHandler handles product catalog requests.
type ProductHandler struct {
	productService portssvc.ProductSvcFacade
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService portssvc.ProductSvcFacade) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// registerProductRoutes sets up the routes for the product catalog.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := NewProductHandler(productService)

	rg.POST("", h.CreateProduct)
	rg.GET("", h.ListProducts)
	rg.GET("/:id", h.GetProductByID)
	rg.PUT("", h.EditProduct)
	rg.PATCH("/status", h.ChangeProductStatus)
	rg.DELETE("/:id", h.DeleteProduct)
	rg.POST("/images", h.AddProductImages)
	rg.DELETE("/images", h.DeleteProductImage)
}

// uploadedFiles flattens every file part of a multipart form, whatever the
// part is named.
func uploadedFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	var files []*multipart.FileHeader
	for _, headers := range form.File {
		files = append(files, headers...)
	}
	return files
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	switch {
	case req.Description == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "Description is Empty"})
		return
	case req.Title == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is Empty"})
		return
	case req.Provider == "":
		c.JSON(http.StatusBadRequest, gin.H{"message": "Provider is Empty"})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, uploadedFiles(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "This Title already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrStorage) {
			c.JSON(http.StatusInternalServerError, gin.H{"data": "Server error!"})
			return
		}
		logError(c, "Failed to create product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": fmt.Sprintf("New Product %s created!", product.Title)})
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters"})
		return
	}

	products, count, err := h.productService.ListProducts(c.Request.Context(), params.ToDomain())
	if err != nil {
		logError(c, "Failed to list products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ListProductsResponse{Data: products, Count: count})
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id is Empty"})
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no item found"})
			return
		}
		logError(c, "Failed to get product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToProductInfo(product)})
}

func (h *ProductHandler) EditProduct(c *gin.Context) {
	var req dto.EditProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id is Empty"})
		return
	}

	product, err := h.productService.EditProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no item found"})
			return
		}
		logError(c, "Failed to edit product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fmt.Sprintf("user by this id : %s updated", product.ProductID)})
}

func (h *ProductHandler) ChangeProductStatus(c *gin.Context) {
	var req dto.ChangeProductStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id is Empty"})
		return
	}
	if req.ProductStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "productStatus is Empty"})
		return
	}

	product, err := h.productService.ChangeProductStatus(c.Request.Context(), req.ID, domain.ProductStatus(req.ProductStatus))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "UserStatus is invalid"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no item found"})
			return
		}
		logError(c, "Failed to change product status", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fmt.Sprintf("user by this id : %s updated!", product.ProductID)})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id is Empty"})
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "no item found"})
			return
		}
		logError(c, "Failed to delete product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": fmt.Sprintf("product by this id : %s deleted", id)})
}

func (h *ProductHandler) AddProductImages(c *gin.Context) {
	id := c.PostForm("id")

	if err := h.productService.AddProductImages(c.Request.Context(), id, uploadedFiles(c)); err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			c.JSON(http.StatusInternalServerError, gin.H{"data": "Server error!"})
			return
		}
		logError(c, "Failed to add product images", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": "image uploaded!"})
}

func (h *ProductHandler) DeleteProductImage(c *gin.Context) {
	var req dto.DeleteProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.ImageURL == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": "image url is empty "})
		return
	}

	if err := h.productService.DeleteProductImage(c.Request.Context(), req.ImageURL); err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error removing the file from the server"})
			return
		}
		logError(c, "Failed to delete product image", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
