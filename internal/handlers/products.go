package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/service"
)

type productImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	AltText  string `json:"altText"`
}

type productRequest struct {
	Name           string                `json:"name" binding:"required"`
	Slug           string                `json:"slug"`
	Description    string                `json:"description"`
	Price          int64                 `json:"price"`
	StockQuantity  int                   `json:"stockQuantity"`
	Status         string                `json:"status"`
	CategoryID     string                `json:"categoryId" binding:"required"`
	Images         []productImageRequest `json:"images"`
	ThumbnailIndex int                   `json:"thumbnailIndex"`
}

type productImageResponse struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	AltText     string `json:"altText"`
	SortOrder   int    `json:"sortOrder"`
	IsThumbnail bool   `json:"isThumbnail"`
}

type productResponse struct {
	ID            string                 `json:"id"`
	CategoryID    string                 `json:"categoryId"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug"`
	Description   string                 `json:"description"`
	Price         int64                  `json:"price"`
	StockQuantity int                    `json:"stockQuantity"`
	Status        string                 `json:"status"`
	Images        []productImageResponse `json:"images"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

type productListResponse struct {
	Data []productResponse `json:"data"`
	Meta listMeta          `json:"meta"`
}

type listMeta struct {
	Total int `json:"total"`
}

func toProductResponse(p models.Product) productResponse {
	images := make([]productImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, productImageResponse{
			ID:          img.ID,
			ImageURL:    img.ImageURL,
			AltText:     img.AltText,
			SortOrder:   img.SortOrder,
			IsThumbnail: img.IsThumbnail,
		})
	}
	return productResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		Status:        string(p.Status),
		Images:        images,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductInput(req productRequest) service.ProductInput {
	images := make([]service.ProductImageInput, 0, len(req.Images))
	for i, img := range req.Images {
		images = append(images, service.ProductImageInput{
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			SortOrder: i,
		})
	}
	return service.ProductInput{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		Price:          req.Price,
		StockQuantity:  req.StockQuantity,
		Status:         req.Status,
		CategoryID:     req.CategoryID,
		Images:         images,
		ThumbnailIndex: req.ThumbnailIndex,
	}
}

// ListProducts wraps the page in a data/meta envelope; meta.total is the
// database count for the same filter, not the page length.
func (h HandlerSet) ListProducts(c *gin.Context) {
	page, err := h.catalogService.ListProducts(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	data := make([]productResponse, 0, len(page.Products))
	for _, p := range page.Products {
		data = append(data, toProductResponse(p))
	}

	c.JSON(http.StatusOK, productListResponse{
		Data: data,
		Meta: listMeta{Total: page.Total},
	})
}

func (h HandlerSet) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h HandlerSet) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), toProductInput(req))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h HandlerSet) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), toProductInput(req))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h HandlerSet) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
