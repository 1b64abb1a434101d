package routes

import (
	"net/http"

	"food-delivery-db/handlers"
	"food-delivery-db/metrics"
	"food-delivery-db/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewEngine builds the read-only inspection server.
func NewEngine(h *handlers.Handler, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(log), middleware.ReadOnly())

	r.GET("/health", func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := h.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": "food_delivery_db inspection server",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	SetupRoutes(r, h)
	return r
}

// SetupRoutes registers the /api group.
func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	{
		// Schema
		api.GET("/schema", h.GetSchema)
		api.GET("/stats", h.GetStats)
		api.GET("/enums", h.GetEnums)

		// Catalog
		api.GET("/restaurants", h.ListRestaurants)
		api.GET("/restaurants/:id", h.GetRestaurant)
		api.GET("/restaurants/:id/menu", h.GetMenu)
		api.GET("/restaurants/:id/reviews", h.GetReviews)
		api.GET("/delivery-personnel", h.ListDeliveryPersonnel)

		// Orders
		api.GET("/orders/:id", h.GetOrder)
	}
}
