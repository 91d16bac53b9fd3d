package dto

import (
	"github.com/shopspring/decimal"

	"github.com/shopward/shopward_backend/internal/core/domain"
)

// CreateProductRequest carries the multipart form fields for product creation.
type CreateProductRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Provider    string `form:"provider"`
}

// EditProductRequest carries a partial product update keyed by id. Price is
// bound from the body but not applied; only title, description and provider
// are written.
type EditProductRequest struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Provider    string           `json:"provider"`
	Price       *decimal.Decimal `json:"price"`
}

// ChangeProductStatusRequest carries a status change keyed by product id.
type ChangeProductStatusRequest struct {
	ID            string `json:"id"`
	ProductStatus string `json:"productStatus"`
}

// DeleteProductImageRequest identifies an image by its stored path.
type DeleteProductImageRequest struct {
	ImageURL string `json:"imageUrl"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Title         string `form:"title"`
	Provider      string `form:"provider"`
	ID            string `form:"id"`
	ProductStatus string `form:"productStatus"`
	SortOn        string `form:"sortOn,default=title"`
	IsAscending   bool   `form:"isAscending,default=true"`
	ItemPerPage   int    `form:"itemPerPage"`
	CurrentPage   int    `form:"currentPage"`
}

// ToDomain converts the query parameters into the typed filter specification.
func (p ListProductsParams) ToDomain() domain.ProductFilter {
	return domain.ProductFilter{
		Title:     p.Title,
		Provider:  p.Provider,
		ProductID: p.ID,
		Status:    domain.ProductStatus(p.ProductStatus),
		Sort:      domain.SortSpec{SortOn: p.SortOn, Ascending: p.IsAscending},
		Paging:    domain.PageSpec{ItemPerPage: p.ItemPerPage, CurrentPage: p.CurrentPage},
	}
}

// ListProductsResponse wraps the product rows and the unpaged match count.
type ListProductsResponse struct {
	Data  []domain.Product `json:"data"`
	Count int64            `json:"count"`
}

// ProductInfo is the reduced projection returned by the single-product lookup.
type ProductInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"productImages"`
}

// ToProductInfo projects a domain product onto the reduced shape.
func ToProductInfo(p *domain.Product) ProductInfo {
	urls := make([]string, len(p.Images))
	for i, img := range p.Images {
		urls[i] = img.ImageURL
	}
	return ProductInfo{
		ID:          p.ProductID,
		Title:       p.Title,
		Description: p.Description,
		Images:      urls,
	}
}
