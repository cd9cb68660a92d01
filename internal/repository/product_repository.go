package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/database"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
)

type ProductRepository struct {
	pool database.Pool
}

func NewProductRepository(pool database.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `id, category_id, name, slug, description, price, stock_quantity, status, created_at, updated_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description,
		&p.Price, &p.StockQuantity, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// List returns products matching the optional case-insensitive name
// search, newest first, with their images attached. POSITION treats the
// term literally, so % and _ in a search cannot act as wildcards.
func (r *ProductRepository) List(ctx context.Context, search string) ([]models.Product, error) {
	const query = `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($1 = '' OR POSITION(LOWER($1) IN LOWER(name)) > 0)
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the total over the same filter List applies, so the list
// envelope's meta.total is authoritative rather than a length fallback.
func (r *ProductRepository) Count(ctx context.Context, search string) (int, error) {
	const query = `
		SELECT COUNT(*) FROM products
		WHERE ($1 = '' OR POSITION(LOWER($1) IN LOWER(name)) > 0)
	`
	var count int
	err := r.pool.QueryRow(ctx, query, search).Scan(&count)
	return count, err
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	images, err := r.imagesFor(ctx, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	p.Images = images
	return p, nil
}

// Create inserts the product and its images in one transaction.
func (r *ProductRepository) Create(ctx context.Context, p models.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const query = `
		INSERT INTO products (id, category_id, name, slug, description, price, stock_quantity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	if _, err := tx.Exec(ctx, query, p.ID, p.CategoryID, p.Name, p.Slug,
		p.Description, p.Price, p.StockQuantity, p.Status); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return err
	}

	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update rewrites the product row and replaces its image set wholesale;
// the form always submits the full ordered list.
func (r *ProductRepository) Update(ctx context.Context, p models.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const query = `
		UPDATE products
		SET category_id = $2, name = $3, slug = $4, description = $5,
		    price = $6, stock_quantity = $7, status = $8, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, p.ID, p.CategoryID, p.Name, p.Slug,
		p.Description, p.Price, p.StockQuantity, p.Status)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, p.ID); err != nil {
		return err
	}
	if err := insertImages(ctx, tx, p.ID, p.Images); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

func insertImages(ctx context.Context, tx pgx.Tx, productID string, images []models.ProductImage) error {
	const query = `
		INSERT INTO product_images (id, product_id, image_url, alt_text, sort_order, is_thumbnail)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, img := range images {
		if _, err := tx.Exec(ctx, query, img.ID, productID,
			img.ImageURL, img.AltText, img.SortOrder, img.IsThumbnail); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepository) imagesFor(ctx context.Context, productID string) ([]models.ProductImage, error) {
	const query = `
		SELECT id, product_id, image_url, alt_text, sort_order, is_thumbnail
		FROM product_images WHERE product_id = $1 ORDER BY sort_order
	`
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectImages(rows)
}

func (r *ProductRepository) attachImages(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	idx := make(map[string]int, len(products))
	ids := make([]string, len(products))
	for i, p := range products {
		idx[p.ID] = i
		ids[i] = p.ID
	}

	const query = `
		SELECT id, product_id, image_url, alt_text, sort_order, is_thumbnail
		FROM product_images WHERE product_id = ANY($1) ORDER BY product_id, sort_order
	`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	images, err := collectImages(rows)
	if err != nil {
		return err
	}
	for _, img := range images {
		if i, ok := idx[img.ProductID]; ok {
			products[i].Images = append(products[i].Images, img)
		}
	}
	return nil
}

func collectImages(rows pgx.Rows) ([]models.ProductImage, error) {
	var images []models.ProductImage
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.ImageURL,
			&img.AltText, &img.SortOrder, &img.IsThumbnail); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
