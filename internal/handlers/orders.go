package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/v900meme-wq/e-commerce-ui-admin/internal/models"
)

type orderItemResponse struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
}

type orderResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"userId"`
	CustomerEmail string              `json:"customerEmail"`
	TotalAmount   int64               `json:"totalAmount"`
	Status        string              `json:"status"`
	Address       string              `json:"address"`
	Phone         string              `json:"phone"`
	Note          string              `json:"note"`
	Items         []orderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func toOrderResponse(o models.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return orderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		CustomerEmail: o.CustomerEmail,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		Address:       o.Address,
		Phone:         o.Phone,
		Note:          o.Note,
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}

func (h HandlerSet) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	c.JSON(http.StatusOK, resp)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h HandlerSet) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderService.UpdateStatus(c.Request.Context(), c.Param("id"), models.OrderStatus(req.Status)); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}
