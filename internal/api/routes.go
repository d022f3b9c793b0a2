package api

import (
	"ucstore-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.CORSMiddleware())

	// API route group
	api := r.Group("/api")
	{
		// Order routes
		orders := api.Group("/orders")
		{
			orders.POST("", CreateOrder)
			orders.GET("", ListOrders)
		}

		// Payment initiation
		api.POST("/payment", CreatePayment)

		// Settings lookup
		api.GET("/settings", GetSettings)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "ucstore-api",
		})
	})
}
