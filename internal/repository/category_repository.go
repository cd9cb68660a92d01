package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/database"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
)

type CategoryRepository struct {
	pool database.Pool
}

func NewCategoryRepository(pool database.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List returns all categories with their derived product counts.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	const query = `
		SELECT c.id, c.name, c.slug, COUNT(p.id) AS product_count, c.created_at, c.updated_at
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name, c.slug, c.created_at, c.updated_at
		ORDER BY c.name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ProductCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (models.Category, error) {
	const query = `
		SELECT c.id, c.name, c.slug,
		       (SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count,
		       c.created_at, c.updated_at
		FROM categories c WHERE c.id = $1
	`
	var c models.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.ProductCount, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

func (r *CategoryRepository) Create(ctx context.Context, c models.Category) error {
	const query = `
		INSERT INTO categories (id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	_, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Slug)
	if isUniqueViolation(err) {
		return ErrDuplicateSlug
	}
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, c models.Category) error {
	const query = `
		UPDATE categories SET name = $2, slug = $3, updated_at = NOW() WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Slug)
	if isUniqueViolation(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete fails with ErrCategoryInUse while products still reference the
// category; the FK is RESTRICT on purpose.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if isForeignKeyViolation(err) {
		return ErrCategoryInUse
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
