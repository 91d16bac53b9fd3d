package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus enumerates the product lifecycle states.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "Active"
	ProductStatusDeactive ProductStatus = "Deactive"
	ProductStatusDeleted  ProductStatus = "Deleted"
)

// ValidProductStatus reports whether s is one of the declared status values.
func ValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductStatusActive, ProductStatusDeactive, ProductStatusDeleted:
		return true
	}
	return false
}

// Product is a sellable item owned by a provider. Title is unique.
// Deleting a product flips Status to Deleted; its images are removed for real.
type Product struct {
	ProductID   string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Provider    string           `json:"provider"`
	Status      ProductStatus    `json:"productStatus"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Images      []ProductImage   `json:"productImages"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ProductImage links a stored image file to its owning product.
type ProductImage struct {
	ImageID   string `json:"id"`
	ProductID string `json:"productId"`
	ImageURL  string `json:"imageUrl"`
}

// ProductFilter is the typed filter specification for product listing.
type ProductFilter struct {
	Title     string        // contains match
	Provider  string        // contains match
	ProductID string        // exact match
	Status    ProductStatus // exact match
	Sort      SortSpec
	Paging    PageSpec
}
