package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/http/middleware"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

type CartHandler struct {
	carts *usecase.Carts
}

func NewCartHandler(carts *usecase.Carts) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get handles GET /api/carts. First access creates the empty cart.
func (h *CartHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	cart, err := h.carts.Get(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

type addItemReq struct {
	ItemID string `json:"item_id" binding:"required"`
	// Quantity is validated by the use case so that zero and negative values
	// get the same error message instead of a generic binding failure.
	Quantity int32 `json:"quantity"`
}

// Add handles POST /api/carts.
func (h *CartHandler) Add(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "item_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	cart, err := h.carts.AddItem(ctx, middleware.UserID(c), req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// Remove handles DELETE /api/carts/:item_id. The whole line goes, whatever
// quantity it held.
func (h *CartHandler) Remove(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	cart, err := h.carts.RemoveItem(ctx, middleware.UserID(c), c.Param("item_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}
