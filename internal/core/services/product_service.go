package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portsrepo "github.com/shopward/shopward_backend/internal/core/ports/repositories"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
	"github.com/shopward/shopward_backend/internal/middleware"
)

// productService implements the ProductSvcFacade interface
type productService struct {
	productRepo portsrepo.ProductRepository
	fileStore   portssvc.FileStoreSvc
}

// NewProductService creates a new instance of productService
func NewProductService(productRepo portsrepo.ProductRepository, fileStore portssvc.FileStoreSvc) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
		fileStore:   fileStore,
	}
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	products, count, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, count, nil
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, files []*multipart.FileHeader) (*domain.Product, error) {
	existing, err := s.productRepo.FindProductByTitle(ctx, req.Title)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing product: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("product title %q is taken: %w", req.Title, apperrors.ErrDuplicate)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:   uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Provider:    req.Provider,
		Status:      domain.ProductStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	// Files are stored and linked one by one. A mid-loop failure aborts the
	// whole request but leaves the product row and earlier images in place.
	if err := s.storeImages(ctx, product.ProductID, files); err != nil {
		return nil, err
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("product created", "product_id", product.ProductID, "title", product.Title, "images", len(files))

	return &product, nil
}

func (s *productService) storeImages(ctx context.Context, productID string, files []*multipart.FileHeader) error {
	for _, file := range files {
		stored, err := s.fileStore.Save(ctx, file)
		if err != nil {
			return fmt.Errorf("failed to store product image: %w", apperrors.ErrStorage)
		}
		image := domain.ProductImage{
			ImageID:   uuid.NewString(),
			ProductID: productID,
			ImageURL:  stored,
		}
		if err := s.productRepo.SaveProductImage(ctx, image); err != nil {
			return fmt.Errorf("failed to link product image: %w", err)
		}
	}
	return nil
}

func (s *productService) EditProduct(ctx context.Context, req dto.EditProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load product for edit: %w", err)
	}

	if req.Title != "" {
		product.Title = req.Title
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Provider != "" {
		product.Provider = req.Provider
	}
	// req.Price is bound from the body but never written; the column keeps
	// its stored value.
	product.UpdatedAt = time.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *productService) ChangeProductStatus(ctx context.Context, productID string, status domain.ProductStatus) (*domain.Product, error) {
	if !domain.ValidProductStatus(status) {
		return nil, fmt.Errorf("unknown product status %q: %w", status, apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load product for status change: %w", err)
	}

	if err := s.productRepo.UpdateProductStatus(ctx, productID, status); err != nil {
		return nil, fmt.Errorf("failed to change product status: %w", err)
	}
	product.Status = status

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load product for delete: %w", err)
	}

	if err := s.productRepo.UpdateProductStatus(ctx, productID, domain.ProductStatusDeleted); err != nil {
		return fmt.Errorf("failed to soft-delete product: %w", err)
	}

	if err := s.productRepo.DeleteImagesByProductID(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product image rows: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	for _, image := range product.Images {
		if err := s.fileStore.Remove(ctx, image.ImageURL); err != nil {
			// A file that cannot be unlinked does not fail the delete.
			logger.Error("failed to unlink product image file", "image_url", image.ImageURL, "error", err)
		}
	}

	logger.Info("product deleted", "product_id", productID, "images_removed", len(product.Images))

	return nil
}

func (s *productService) AddProductImages(ctx context.Context, productID string, files []*multipart.FileHeader) error {
	return s.storeImages(ctx, productID, files)
}

func (s *productService) DeleteProductImage(ctx context.Context, imageURL string) error {
	if _, err := s.productRepo.DeleteImagesByURL(ctx, imageURL); err != nil {
		return fmt.Errorf("failed to delete image rows: %w", err)
	}

	if err := s.fileStore.Remove(ctx, imageURL); err != nil {
		return fmt.Errorf("failed to unlink image file %s: %w", imageURL, apperrors.ErrStorage)
	}

	return nil
}
