package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/ids"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/slug"
)

// ErrValidation marks request-shape failures caught before any write.
var ErrValidation = errors.New("validation failed")

type CatalogService struct {
	categories *repository.CategoryRepository
	products   *repository.ProductRepository
}

func NewCatalogService(categories *repository.CategoryRepository, products *repository.ProductRepository) *CatalogService {
	return &CatalogService{categories: categories, products: products}
}

// ---- Categories ----

type CategoryInput struct {
	Name string
	Slug string
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, input CategoryInput) (models.Category, error) {
	c, err := buildCategory(input)
	if err != nil {
		return models.Category{}, err
	}
	c.ID = ids.New()
	if err := s.categories.Create(ctx, c); err != nil {
		return models.Category{}, err
	}
	return s.categories.GetByID(ctx, c.ID)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, input CategoryInput) (models.Category, error) {
	c, err := buildCategory(input)
	if err != nil {
		return models.Category{}, err
	}
	c.ID = id
	if err := s.categories.Update(ctx, c); err != nil {
		return models.Category{}, err
	}
	return s.categories.GetByID(ctx, id)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func buildCategory(input CategoryInput) (models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Category{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	sl := strings.TrimSpace(input.Slug)
	if sl == "" {
		sl = slug.Make(name)
	}
	if sl == "" {
		return models.Category{}, fmt.Errorf("%w: slug cannot be derived from name", ErrValidation)
	}
	return models.Category{Name: name, Slug: sl}, nil
}

// ---- Products ----

type ProductImageInput struct {
	ImageURL  string
	AltText   string
	SortOrder int
}

type ProductInput struct {
	Name          string
	Slug          string
	Description   string
	Price         int64
	StockQuantity int
	Status        string
	CategoryID    string
	Images        []ProductImageInput
	// ThumbnailIndex points into Images; exactly that entry is flagged
	// as the thumbnail.
	ThumbnailIndex int
}

type ProductPage struct {
	Products []models.Product
	Total    int
}

func (s *CatalogService) ListProducts(ctx context.Context, search string) (ProductPage, error) {
	search = strings.TrimSpace(search)
	products, err := s.products.List(ctx, search)
	if err != nil {
		return ProductPage{}, err
	}
	total, err := s.products.Count(ctx, search)
	if err != nil {
		return ProductPage{}, err
	}
	return ProductPage{Products: products, Total: total}, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, input ProductInput) (models.Product, error) {
	p, err := buildProduct(input)
	if err != nil {
		return models.Product{}, err
	}
	p.ID = ids.New()
	for i := range p.Images {
		p.Images[i].ProductID = p.ID
	}
	if err := s.products.Create(ctx, p); err != nil {
		return models.Product{}, err
	}
	return s.products.GetByID(ctx, p.ID)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, input ProductInput) (models.Product, error) {
	p, err := buildProduct(input)
	if err != nil {
		return models.Product{}, err
	}
	p.ID = id
	for i := range p.Images {
		p.Images[i].ProductID = id
	}
	if err := s.products.Update(ctx, p); err != nil {
		return models.Product{}, err
	}
	return s.products.GetByID(ctx, id)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

func buildProduct(input ProductInput) (models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return models.Product{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if input.CategoryID == "" {
		return models.Product{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if input.Price < 0 {
		return models.Product{}, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if input.StockQuantity < 0 {
		return models.Product{}, fmt.Errorf("%w: stock quantity cannot be negative", ErrValidation)
	}
	if len(input.Images) == 0 {
		return models.Product{}, fmt.Errorf("%w: at least one image is required", ErrValidation)
	}
	if input.ThumbnailIndex < 0 || input.ThumbnailIndex >= len(input.Images) {
		return models.Product{}, fmt.Errorf("%w: thumbnail index out of range", ErrValidation)
	}

	status := models.ProductStatus(input.Status)
	switch status {
	case "":
		status = models.ProductStatusActive
	case models.ProductStatusActive, models.ProductStatusInactive:
	default:
		return models.Product{}, fmt.Errorf("%w: unknown status %q", ErrValidation, input.Status)
	}

	sl := strings.TrimSpace(input.Slug)
	if sl == "" {
		sl = slug.Make(name)
	}
	if sl == "" {
		return models.Product{}, fmt.Errorf("%w: slug cannot be derived from name", ErrValidation)
	}

	images := make([]models.ProductImage, len(input.Images))
	for i, in := range input.Images {
		if strings.TrimSpace(in.ImageURL) == "" {
			return models.Product{}, fmt.Errorf("%w: image url cannot be empty", ErrValidation)
		}
		images[i] = models.ProductImage{
			ID:          ids.New(),
			ImageURL:    in.ImageURL,
			AltText:     in.AltText,
			SortOrder:   i,
			IsThumbnail: i == input.ThumbnailIndex,
		}
	}

	return models.Product{
		CategoryID:    input.CategoryID,
		Name:          name,
		Slug:          sl,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Status:        status,
		Images:        images,
	}, nil
}
