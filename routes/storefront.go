package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/cart"
	cartControllers "github.com/Wiss1219/kotobcom-bookstore-msaken/controllers/cart"
	orderControllers "github.com/Wiss1219/kotobcom-bookstore-msaken/controllers/order"
	"github.com/Wiss1219/kotobcom-bookstore-msaken/middleware"
)

// SetupStorefrontRoutes registers the session-scoped cart and checkout
// endpoints. All of them require a session token.
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store) {
	storefront := r.Group("/")
	storefront.Use(middleware.ValidateSession)
	{
		cartGroup := storefront.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(store))                       // GET /cart
			cartGroup.POST("", cartControllers.AddItem(db, store))                  // POST /cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateQuantity(store))    // PUT /cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.RemoveItem(store))     // DELETE /cart/:product_id
			cartGroup.DELETE("", cartControllers.ClearCart(store))                  // DELETE /cart
		}

		storefront.POST("/checkout", orderControllers.Checkout(db, store)) // POST /checkout
	}
}
