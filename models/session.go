package models

import "time"

// GuestSession identifies one anonymous shopper. Carts and checkouts are
// keyed by the session ID carried in the session token.
type GuestSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
