package repository

import (
	"context"
	"time"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/database"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
)

type UploadRepository struct {
	pool database.Pool
}

func NewUploadRepository(pool database.Pool) *UploadRepository {
	return &UploadRepository{pool: pool}
}

func (r *UploadRepository) Create(ctx context.Context, u models.Upload) error {
	const query = `
		INSERT INTO uploads (id, kind, bucket, object_key, content_type, size_bytes, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Kind, u.Bucket, u.ObjectKey, u.ContentType, u.SizeBytes, u.UploadedBy)
	return err
}

// ListOrphanProductUploads finds product-image uploads older than cutoff
// whose URL never made it into a product_images row. Description images
// live inside rich-text documents and cannot be traced, so they are
// never considered orphans.
func (r *UploadRepository) ListOrphanProductUploads(ctx context.Context, cutoff time.Time) ([]models.Upload, error) {
	const query = `
		SELECT u.id, u.kind, u.bucket, u.object_key, u.content_type, u.size_bytes, u.uploaded_by, u.created_at
		FROM uploads u
		WHERE u.kind = 'product'
		  AND u.created_at < $1
		  AND NOT EXISTS (
			SELECT 1 FROM product_images pi WHERE pi.image_url LIKE '%' || u.object_key
		  )
	`
	rows, err := r.pool.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var uploads []models.Upload
	for rows.Next() {
		var u models.Upload
		if err := rows.Scan(&u.ID, &u.Kind, &u.Bucket, &u.ObjectKey,
			&u.ContentType, &u.SizeBytes, &u.UploadedBy, &u.CreatedAt); err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	return uploads, rows.Err()
}

func (r *UploadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM uploads WHERE id = $1`, id)
	return err
}
