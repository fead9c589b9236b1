package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Wiss1219/kotobcom-bookstore-msaken/controllers/order"
)

// SetupTrackingRoutes registers order lookup by order number. Tracking is
// public: the order number is the credential.
func SetupTrackingRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.GET("/track/:number", orderControllers.TrackOrder(db))  // GET /orders/track/:number
		orders.GET("/track/:number/ws", orderControllers.TrackOrderWS) // websocket status feed
	}
}
