package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/cart"
)

// SetupRoutes is the single entry point that wires up the public catalog,
// the session-scoped storefront, order tracking, and the admin group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *cart.Store) {
	// Public: session issuance and catalog browsing
	SetupAuthRoutes(r, db)
	SetupCatalogRoutes(r, db)

	// Session-protected: cart and checkout
	SetupStorefrontRoutes(r, db, store)

	// Public: order tracking by order number
	SetupTrackingRoutes(r, db)

	// API-key-protected: order administration
	SetupAdminRoutes(r, db)
}
