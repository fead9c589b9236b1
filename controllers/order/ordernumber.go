package orderControllers

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// OrderNumberPrefix starts every Kotobcom order number.
const OrderNumberPrefix = "KTC"

// GenerateOrderNumber builds a human-readable order number:
// KTC + YYYYMMDD + 4-digit zero-padded random suffix, e.g. KTC202407010042.
// Uniqueness is enforced by the orders table; checkout regenerates on a
// duplicate-key failure.
func GenerateOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s%s%04d", OrderNumberPrefix, now.Format("20060102"), rand.IntN(10000))
}
