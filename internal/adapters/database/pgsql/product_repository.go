package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portsrepo "github.com/shopward/shopward_backend/internal/core/ports/repositories"
)

type PgxProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{db: db}
}

// Ensure PgxProductRepository implements portsrepo.ProductRepository
var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

const productColumns = `product_id, title, description, provider, status, price, created_at, updated_at`

// productSortColumns whitelists the sortable columns for product listing.
var productSortColumns = map[string]string{
	"title":         "title",
	"provider":      "provider",
	"productStatus": "status",
	"createdAt":     "created_at",
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ProductID,
		&p.Title,
		&p.Description,
		&p.Provider,
		&p.Status,
		&p.Price,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
        INSERT INTO products (` + productColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		product.ProductID,
		product.Title,
		product.Description,
		product.Provider,
		product.Status,
		product.Price,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE product_id = $1;
    `
	product, err := scanProduct(r.db.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by id %s: %w", productID, err)
	}

	images, err := r.FindImagesByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	product.Images = images

	return product, nil
}

func (r *PgxProductRepository) FindProductByTitle(ctx context.Context, title string) (*domain.Product, error) {
	query := `
        SELECT ` + productColumns + `
        FROM products
        WHERE title = $1;
    `
	product, err := scanProduct(r.db.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by title %s: %w", title, err)
	}
	return product, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	where := []string{}
	args := []any{}

	if filter.Title != "" {
		args = append(args, filter.Title)
		where = append(where, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.Provider != "" {
		args = append(args, filter.Provider)
		where = append(where, fmt.Sprintf("provider ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where = append(where, fmt.Sprintf("product_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM products WHERE ` + cond
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	column, ok := productSortColumns[filter.Sort.SortOn]
	if !ok {
		column = "title"
	}
	direction := "ASC"
	if !filter.Sort.Ascending {
		direction = "DESC"
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` + cond +
		fmt.Sprintf(" ORDER BY %s %s", column, direction)

	if limit := filter.Paging.Limit(); limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Paging.Offset())
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, *product)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}

	if err := r.attachImages(ctx, products); err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

// attachImages loads the image rows for the given page of products in one query.
func (r *PgxProductRepository) attachImages(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]string, 0, len(products))
	index := make(map[string]int, len(products))
	for i := range products {
		products[i].Images = []domain.ProductImage{}
		ids = append(ids, products[i].ProductID)
		index[products[i].ProductID] = i
	}

	query := `
        SELECT image_id, product_id, image_url
        FROM product_images
        WHERE product_id = ANY($1)
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to query product images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ImageID, &img.ProductID, &img.ImageURL); err != nil {
			return fmt.Errorf("failed to scan product image row: %w", err)
		}
		if i, ok := index[img.ProductID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}
	if rows.Err() != nil {
		return fmt.Errorf("error iterating product image rows: %w", rows.Err())
	}

	return nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
        UPDATE products
        SET title = $1, description = $2, provider = $3, updated_at = $4
        WHERE product_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		product.Title,
		product.Description,
		product.Provider,
		product.UpdatedAt,
		product.ProductID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update product query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) UpdateProductStatus(ctx context.Context, productID string, status domain.ProductStatus) error {
	query := `
        UPDATE products
        SET status = $1, updated_at = NOW()
        WHERE product_id = $2;
    `
	cmdTag, err := r.db.Exec(ctx, query, status, productID)
	if err != nil {
		return fmt.Errorf("failed to update product status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) SaveProductImage(ctx context.Context, image domain.ProductImage) error {
	query := `
        INSERT INTO product_images (image_id, product_id, image_url, created_at)
        VALUES ($1, $2, $3, NOW());
    `
	_, err := r.db.Exec(ctx, query, image.ImageID, image.ProductID, image.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to save product image: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindImagesByProductID(ctx context.Context, productID string) ([]domain.ProductImage, error) {
	query := `
        SELECT image_id, product_id, image_url
        FROM product_images
        WHERE product_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query images for product %s: %w", productID, err)
	}
	defer rows.Close()

	images := []domain.ProductImage{}
	for rows.Next() {
		var img domain.ProductImage
		if err := rows.Scan(&img.ImageID, &img.ProductID, &img.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan product image row: %w", err)
		}
		images = append(images, img)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product image rows: %w", rows.Err())
	}

	return images, nil
}

func (r *PgxProductRepository) DeleteImagesByProductID(ctx context.Context, productID string) error {
	query := `DELETE FROM product_images WHERE product_id = $1;`
	_, err := r.db.Exec(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("failed to delete images for product %s: %w", productID, err)
	}
	return nil
}

func (r *PgxProductRepository) DeleteImagesByURL(ctx context.Context, imageURL string) (int64, error) {
	query := `DELETE FROM product_images WHERE image_url = $1;`
	cmdTag, err := r.db.Exec(ctx, query, imageURL)
	if err != nil {
		return 0, fmt.Errorf("failed to delete image %s: %w", imageURL, err)
	}
	return cmdTag.RowsAffected(), nil
}
