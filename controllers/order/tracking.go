package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/models"
)

// NormalizeOrderNumber makes lookup case-insensitive: numbers are stored
// uppercase.
func NormalizeOrderNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// GET /orders/track/:number
// An unknown order number is a normal negative result, distinct from a
// service failure.
func TrackOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		number := NormalizeOrderNumber(c.Param("number"))
		if number == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order number is required"})
			return
		}

		var order models.Order
		err := db.Preload("Items").First(&order, "order_number = ?", number).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found. Please check your order number."})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while searching for your order."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order": order,
			"steps": StatusSteps(order.Status),
		})
	}
}
