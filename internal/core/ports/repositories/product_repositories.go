package repositories

import (
	"context"

	"github.com/shopward/shopward_backend/internal/core/domain"
)

// ProductRepository defines persistence operations for products and their images.
type ProductRepository interface {
	// SaveProduct inserts a new product row.
	SaveProduct(ctx context.Context, product domain.Product) error

	// FindProductByID retrieves a product with its images joined.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByTitle retrieves a product by its unique title.
	FindProductByTitle(ctx context.Context, title string) (*domain.Product, error)

	// ListProducts returns the matching page of products (images joined) plus
	// the total match count ignoring pagination.
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error)

	// UpdateProduct persists title, description and provider.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// UpdateProductStatus sets the product status.
	UpdateProductStatus(ctx context.Context, productID string, status domain.ProductStatus) error

	// SaveProductImage inserts a new product image row.
	SaveProductImage(ctx context.Context, image domain.ProductImage) error

	// FindImagesByProductID lists the image rows owned by a product.
	FindImagesByProductID(ctx context.Context, productID string) ([]domain.ProductImage, error)

	// DeleteImagesByProductID removes all image rows owned by a product.
	DeleteImagesByProductID(ctx context.Context, productID string) error

	// DeleteImagesByURL removes image rows by stored path, returning the
	// number of rows removed.
	DeleteImagesByURL(ctx context.Context, imageURL string) (int64, error)
}
