package services

import (
	"context"
	"mime/multipart"

	"github.com/shopward/shopward_backend/internal/core/domain"
	"github.com/shopward/shopward_backend/internal/dto"
)

// ProductReaderSvc defines read operations for products.
type ProductReaderSvc interface {
	// GetProductByID retrieves a product with its images joined.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts returns matching products (images joined) and the total match count.
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error)
}

// ProductWriterSvc defines write operations for products.
type ProductWriterSvc interface {
	// CreateProduct persists a new product after a title duplicate check, then
	// stores each uploaded file and its image row. File moves and row creates
	// are sequenced, not transactional: a mid-loop failure aborts and leaves
	// earlier files and rows in place.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, files []*multipart.FileHeader) (*domain.Product, error)

	// EditProduct applies title/description/provider when present.
	EditProduct(ctx context.Context, req dto.EditProductRequest) (*domain.Product, error)

	// ChangeProductStatus applies the requested status.
	ChangeProductStatus(ctx context.Context, productID string, status domain.ProductStatus) (*domain.Product, error)

	// DeleteProduct soft-deletes the product and physically removes its image
	// rows and files. Individual file unlink failures are logged, not fatal.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductImageSvc defines operations on product images.
type ProductImageSvc interface {
	// AddProductImages stores each uploaded file and creates its image row.
	AddProductImages(ctx context.Context, productID string, files []*multipart.FileHeader) error

	// DeleteProductImage removes image rows matching the stored path and
	// unlinks the file. Unlink failures surface as ErrStorage.
	DeleteProductImage(ctx context.Context, imageURL string) error
}

// ProductSvcFacade combines all product-related service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
	ProductImageSvc
}
