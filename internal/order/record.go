package order

import "CoffeeCloud/internal/catalog"

// Record is one stored order. CoffeeID is not validated against the
// catalog at write time; a dangling reference is resolved (or not) when
// the order is mapped for output.
type Record struct {
	ID        string       `json:"id"`
	CoffeeID  int          `json:"coffeeId"`
	Size      catalog.Size `json:"size"`
	CreatedAt int64        `json:"createdAt"` // milliseconds since epoch
}

// Map is the whole per-user order blob: order id to record, unbounded.
type Map map[string]Record
