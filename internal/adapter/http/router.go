package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dhruvsolvzz/SHOPING-CART/internal/adapter/http/middleware"
	"github.com/dhruvsolvzz/SHOPING-CART/internal/logging"
)

func NewRouter(uh *UserHandler, ih *ItemHandler, ch *CartHandler, oh *OrderHandler, auth *middleware.Auth) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())
	r.Use(middleware.Logging(logging.New("http")))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/users", uh.Register)
		api.POST("/users/login", uh.Login)
		api.GET("/users/me", auth.Required(), uh.Me)

		api.GET("/items", ih.List)
		api.GET("/items/:id", ih.Get)
		api.POST("/items", auth.Required(), ih.Create)

		api.GET("/carts", auth.Required(), ch.Get)
		api.POST("/carts", auth.Required(), ch.Add)
		api.DELETE("/carts/:item_id", auth.Required(), ch.Remove)

		api.POST("/orders", auth.Required(), oh.Create)
		api.GET("/orders", auth.Required(), oh.List)
	}

	return r
}
