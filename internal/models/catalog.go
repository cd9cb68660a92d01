package models

import "time"

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

type Category struct {
	ID   string
	Name string
	Slug string
	// ProductCount is derived at read time, never stored.
	ProductCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Product struct {
	ID            string
	CategoryID    string
	Name          string
	Slug          string
	Description   string
	Price         int64
	StockQuantity int
	Status        ProductStatus
	Images        []ProductImage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ProductImage struct {
	ID          string
	ProductID   string
	ImageURL    string
	AltText     string
	SortOrder   int
	IsThumbnail bool
}
