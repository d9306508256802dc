package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

type ItemHandler struct {
	catalog *usecase.Catalog
}

func NewItemHandler(catalog *usecase.Catalog) *ItemHandler {
	return &ItemHandler{catalog: catalog}
}

// List handles GET /api/items.
func (h *ItemHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	items, err := h.catalog.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Get handles GET /api/items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	it, err := h.catalog.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": it})
}

type createItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// Create handles POST /api/items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name and price_cents are required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	it, err := h.catalog.Create(ctx, usecase.CreateItemInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": it})
}
