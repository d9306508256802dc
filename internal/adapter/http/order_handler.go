package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/http/middleware"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/usecase"
)

type OrderHandler struct {
	checkout *usecase.Checkout
	orders   *usecase.Orders
}

func NewOrderHandler(checkout *usecase.Checkout, orders *usecase.Orders) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders}
}

// Create handles POST /api/orders: materialize the cart into an order. The
// request body is empty; the cart is the input. An optional X-Idempotency-Key
// header makes re-clicks of the checkout button safe.
func (h *OrderHandler) Create(c *gin.Context) {
	idemKey := c.GetHeader("X-Idempotency-Key")

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := h.checkout.Execute(ctx, middleware.UserID(c), idemKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// List handles GET /api/orders, newest first.
func (h *OrderHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	orders, err := h.orders.List(ctx, middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
