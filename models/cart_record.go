package models

import "time"

// CartRecord is the durable copy of one session's cart: a single row per
// session holding the serialized cart state. The cart package owns the
// serialization; this table never sees individual items.
type CartRecord struct {
	SessionID string `gorm:"primaryKey"`
	Data      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
