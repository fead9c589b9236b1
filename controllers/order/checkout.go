package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/cart"
	"github.com/Wiss1219/kotobcom-bookstore-msaken/models"
)

// Duplicate order numbers trigger a regenerate-and-retry; collisions within
// one day are 1-in-10000 per pair, so a handful of attempts is plenty.
const maxOrderNumberAttempts = 5

type CheckoutRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes"`
}

var checkoutGuard = newInflightSet()

func sessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return val.(string), true
}

// composeAddress joins the address parts the way the confirmation and
// tracking views show them.
func composeAddress(req CheckoutRequest) string {
	parts := []string{req.Address, req.City}
	if req.PostalCode != "" {
		parts = append(parts, req.PostalCode)
	}
	return strings.Join(parts, ", ")
}

func buildOrder(req CheckoutRequest, state cart.State) models.Order {
	items := make([]models.OrderItem, 0, len(state.Items))
	for _, it := range state.Items {
		items = append(items, models.OrderItem{
			ProductID:      it.ID,
			ProductTitle:   it.Title,
			ProductTitleAR: it.TitleAR,
			Quantity:       it.Quantity,
			UnitPrice:      it.Price,
			TotalPrice:     it.Price * float64(it.Quantity),
		})
	}
	return models.Order{
		OrderNumber:     GenerateOrderNumber(time.Now()),
		CustomerName:    req.Name,
		CustomerEmail:   req.Email,
		CustomerPhone:   req.Phone,
		CustomerAddress: composeAddress(req),
		Notes:           req.Notes,
		PaymentMethod:   "cod",
		TotalAmount:     state.Total,
		Status:          models.OrderStatusPending,
		Items:           items,
	}
}

// POST /checkout
// Writes the order and its items in one transaction, then clears the
// session's cart. The cart is untouched on any failure.
func Checkout(db *gorm.DB, store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, ok := sessionID(c)
		if !ok {
			return
		}

		if !checkoutGuard.tryBegin(sid) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "A checkout is already in progress"})
			return
		}
		defer checkoutGuard.end(sid)

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		state, err := store.Get(sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
			return
		}
		if len(state.Items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty", "redirect": "/cart"})
			return
		}

		var order models.Order
		for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
			order = buildOrder(req, state)
			err = db.Transaction(func(tx *gorm.DB) error {
				return tx.Create(&order).Error
			})
			if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
				break
			}
		}
		if err != nil {
			log.Printf("❌ Checkout failed for session %s: %v", sid, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
			return
		}

		// The order is committed; a failed clear leaves a stale cart but
		// never a lost order.
		if _, err := store.Clear(sid); err != nil {
			log.Printf("⚠️ Order %s placed but cart clear failed: %v", order.OrderNumber, err)
		}

		log.Printf("🛒 Order %s placed: %d items, %.2f TND", order.OrderNumber, len(order.Items), order.TotalAmount)

		c.JSON(http.StatusCreated, gin.H{
			"order_number": order.OrderNumber,
			"redirect":     "/thank-you?order=" + order.OrderNumber,
		})
	}
}
