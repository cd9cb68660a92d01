package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/middleware"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/service"
)

type uploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (h HandlerSet) UploadProductImage(c *gin.Context) {
	h.handleUpload(c, models.UploadKindProduct)
}

func (h HandlerSet) UploadDescriptionImage(c *gin.Context) {
	h.handleUpload(c, models.UploadKindDescription)
}

func (h HandlerSet) handleUpload(c *gin.Context, kind models.UploadKind) {
	userVal, _ := c.Get(middleware.CtxUser)
	actor, ok := userVal.(models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	defer file.Close()

	result, err := h.uploadService.Upload(c.Request.Context(), service.UploadInput{
		Kind:       kind,
		File:       file,
		Header:     header,
		UploadedBy: actor.ID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, uploadResponse{
		ID:  result.Upload.ID,
		URL: result.URL,
	})
}
