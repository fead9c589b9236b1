package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogControllers "github.com/Wiss1219/kotobcom-bookstore-msaken/controllers/catalog"
)

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/books", catalogControllers.GetBooks(db))         // GET /catalog/books?category=&search=
		catalog.GET("/books/:id", catalogControllers.GetBookByID(db))  // GET /catalog/books/:id
		catalog.GET("/categories", catalogControllers.GetCategories()) // GET /catalog/categories
	}
}
