package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/Wiss1219/kotobcom-bookstore-msaken/controllers/order"
	"github.com/Wiss1219/kotobcom-bookstore-msaken/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))                      // GET /admin/orders
		admin.PUT("/orders/:orderID/status", orderControllers.UpdateOrderStatusHandler(db)) // PUT /admin/orders/:orderID/status
		admin.GET("/orders/export", orderControllers.ExportOrdersToExcel(db))               // GET /admin/orders/export
	}
}
