package models

import "time"

type UploadKind string

const (
	UploadKindProduct     UploadKind = "product"
	UploadKindDescription UploadKind = "description"
)

// Upload records a file placed in the object store by one of the image
// upload endpoints. Product uploads that never end up referenced by a
// product_images row are purged by the cleanup job.
type Upload struct {
	ID          string
	Kind        UploadKind
	Bucket      string
	ObjectKey   string
	ContentType string
	SizeBytes   int64
	UploadedBy  string
	CreatedAt   time.Time
}
