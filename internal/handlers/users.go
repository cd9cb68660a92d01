package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/middleware"
	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
)

type accountResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h HandlerSet) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]accountResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, accountResponse{
			ID:        user.ID,
			Email:     user.Email,
			IsAdmin:   user.IsAdmin,
			Status:    string(user.Status),
			CreatedAt: user.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) ToggleUserStatus(c *gin.Context) {
	status, err := h.userService.ToggleStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": string(status)})
}

func (h HandlerSet) ToggleUserAdmin(c *gin.Context) {
	userVal, _ := c.Get(middleware.CtxUser)
	actor, ok := userVal.(models.User)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	isAdmin, err := h.userService.ToggleAdmin(c.Request.Context(), actor.ID, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "isAdmin": isAdmin})
}
