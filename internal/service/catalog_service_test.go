package service

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/repository"
)

func newCatalogService(t *testing.T) (*CatalogService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewCatalogService(
		repository.NewCategoryRepository(mock),
		repository.NewProductRepository(mock),
	), mock
}

func validProductInput() ProductInput {
	return ProductInput{
		Name:       "Áo Sơ Mi Nữ",
		CategoryID: "c1",
		Price:      199000,
		Images: []ProductImageInput{
			{ImageURL: "https://cdn/a.jpg"},
			{ImageURL: "https://cdn/b.jpg"},
		},
		ThumbnailIndex: 1,
	}
}

func TestBuildProduct_DerivesSlugAndThumbnail(t *testing.T) {
	p, err := buildProduct(validProductInput())
	require.NoError(t, err)
	require.Equal(t, "ao-so-mi-nu", p.Slug)
	require.Len(t, p.Images, 2)
	require.False(t, p.Images[0].IsThumbnail)
	require.True(t, p.Images[1].IsThumbnail)
	require.Equal(t, 0, p.Images[0].SortOrder)
	require.Equal(t, 1, p.Images[1].SortOrder)
}

func TestBuildProduct_ExplicitSlugWins(t *testing.T) {
	input := validProductInput()
	input.Slug = "custom-slug"
	p, err := buildProduct(input)
	require.NoError(t, err)
	require.Equal(t, "custom-slug", p.Slug)
}

// Products without images never reach the database.
func TestCreateProduct_ZeroImagesRejected(t *testing.T) {
	svc, mock := newCatalogService(t)

	input := validProductInput()
	input.Images = nil
	_, err := svc.CreateProduct(context.Background(), input)
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateProduct_ValidationErrors(t *testing.T) {
	svc, mock := newCatalogService(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*ProductInput)
	}{
		{"empty name", func(in *ProductInput) { in.Name = "  " }},
		{"missing category", func(in *ProductInput) { in.CategoryID = "" }},
		{"negative price", func(in *ProductInput) { in.Price = -1 }},
		{"negative stock", func(in *ProductInput) { in.StockQuantity = -5 }},
		{"thumbnail out of range", func(in *ProductInput) { in.ThumbnailIndex = 2 }},
		{"unknown status", func(in *ProductInput) { in.Status = "archived" }},
		{"blank image url", func(in *ProductInput) { in.Images[0].ImageURL = " " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validProductInput()
			tc.mutate(&input)
			_, err := svc.CreateProduct(ctx, input)
			require.ErrorIs(t, err, ErrValidation)
		})
	}

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildCategory_DerivesSlug(t *testing.T) {
	c, err := buildCategory(CategoryInput{Name: "Đồ Ngủ"})
	require.NoError(t, err)
	require.Equal(t, "do-ngu", c.Slug)

	_, err = buildCategory(CategoryInput{Name: ""})
	require.ErrorIs(t, err, ErrValidation)

	_, err = buildCategory(CategoryInput{Name: "---"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestListProducts_TotalFromCount(t *testing.T) {
	svc, mock := newCatalogService(t)

	mock.ExpectQuery(`FROM products`).
		WithArgs("áo").
		WillReturnRows(pgxmock.NewRows([]string{"id", "category_id", "name", "slug", "description", "price", "stock_quantity", "status", "created_at", "updated_at"}))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products`).
		WithArgs("áo").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	page, err := svc.ListProducts(context.Background(), "  áo ")
	require.NoError(t, err)
	require.Empty(t, page.Products)
	require.Equal(t, 42, page.Total)

	require.NoError(t, mock.ExpectationsWereMet())
}
