package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Wiss1219/kotobcom-bookstore-msaken/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// trackingHub fans status changes out to the tracking views subscribed to an
// order number.
type trackingHub struct {
	mu   sync.Mutex
	subs map[string]map[*websocket.Conn]bool
}

var hub = &trackingHub{subs: map[string]map[*websocket.Conn]bool{}}

func (h *trackingHub) add(number string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[number] == nil {
		h.subs[number] = map[*websocket.Conn]bool{}
	}
	h.subs[number][conn] = true
}

func (h *trackingHub) remove(number string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[number], conn)
	if len(h.subs[number]) == 0 {
		delete(h.subs, number)
	}
}

func (h *trackingHub) broadcast(number string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.subs[number] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			// A failed write means a dead subscriber; drop it now instead
			// of waiting for its read loop to notice.
			conn.Close()
			delete(h.subs[number], conn)
		}
	}
	if len(h.subs[number]) == 0 {
		delete(h.subs, number)
	}
}

func broadcastStatusChange(order models.Order) {
	payload, err := json.Marshal(gin.H{
		"order_number": order.OrderNumber,
		"status":       order.Status,
		"steps":        StatusSteps(order.Status),
	})
	if err != nil {
		return
	}
	hub.broadcast(order.OrderNumber, payload)
}

// GET /orders/track/:number/ws
// Pushes status updates for one order to an open tracking view.
func TrackOrderWS(c *gin.Context) {
	number := NormalizeOrderNumber(c.Param("number"))
	if number == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order number is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	hub.add(number, conn)
	defer hub.remove(number, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
