package order

import (
	"time"

	"CoffeeCloud/internal/catalog"
)

// deliveredAfterMillis is the simulated fulfillment window: an order
// counts as delivered once strictly more than two minutes have elapsed.
const deliveredAfterMillis = 120_000

// CoffeeSource is the slice of the catalog the mapper needs.
type CoffeeSource interface {
	Coffee(id int) (catalog.Coffee, bool)
}

// View is the client-facing projection of a stored order: catalog display
// fields joined with the order fields. PaidPrice is null when the ordered
// size has no defined price for that coffee.
type View struct {
	ID          string        `json:"id"`
	CoffeeID    int           `json:"coffeeId"`
	Shop        string        `json:"shop"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Tags        []catalog.Tag `json:"tags"`
	Size        catalog.Size  `json:"size"`
	PaidPrice   *float64      `json:"paidPrice"`
	Delivered   bool          `json:"delivered"`
}

// MapOrder is pure: no I/O, deterministic given now. A coffee id that no
// longer resolves in the catalog yields a placeholder view with empty
// display fields and a null price, never an error.
func MapOrder(rec Record, src CoffeeSource, now time.Time) View {
	v := View{
		ID:        rec.ID,
		CoffeeID:  rec.CoffeeID,
		Size:      rec.Size,
		Tags:      []catalog.Tag{},
		Delivered: now.UnixMilli()-rec.CreatedAt > deliveredAfterMillis,
	}

	c, ok := src.Coffee(rec.CoffeeID)
	if !ok {
		return v
	}

	v.Shop = c.Shop
	v.Name = c.Name
	v.Description = c.Description
	v.Tags = append(v.Tags, c.Tags...)

	if price, ok := c.Prices[rec.Size]; ok {
		v.PaidPrice = &price
	}

	return v
}
