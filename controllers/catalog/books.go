package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/models"
)

// GET /catalog/books?category=&search=
// Returns the whole collection filtered in the service. The storefront shows
// the full result set, there is no pagination.
func GetBooks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", models.CategoryAll)
		search := c.Query("search")

		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch books"})
			return
		}

		c.JSON(http.StatusOK, filterProducts(products, category, search))
	}
}

// GET /catalog/books/:id
func GetBookByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid book ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve book"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /catalog/categories
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.Categories())
	}
}
