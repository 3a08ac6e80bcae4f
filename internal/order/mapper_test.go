package order

import (
	"testing"
	"time"

	"CoffeeCloud/internal/catalog"
)

func TestMapOrder_PaidPrice(t *testing.T) {
	cat := catalog.NewStore()
	now := time.Now()

	rec := Record{ID: "o1", CoffeeID: 1, Size: catalog.SizeLarge, CreatedAt: now.UnixMilli()}
	v := MapOrder(rec, cat, now)

	if v.PaidPrice == nil || *v.PaidPrice != 3.99 {
		t.Fatalf("paidPrice=%v", v.PaidPrice)
	}
	if v.Shop != "Billz Coffee" || v.Name != "Rocking Water" {
		t.Fatalf("display fields: %+v", v)
	}
	if v.Delivered {
		t.Fatalf("delivered immediately after creation")
	}
}

func TestMapOrder_UndefinedSizePrice(t *testing.T) {
	cat := catalog.NewStore()
	now := time.Now()

	// Affogato only sells a medium.
	rec := Record{ID: "o1", CoffeeID: 5, Size: catalog.SizeSmall, CreatedAt: now.UnixMilli()}
	v := MapOrder(rec, cat, now)

	if v.PaidPrice != nil {
		t.Fatalf("paidPrice=%v, want nil", *v.PaidPrice)
	}
	if v.Name != "Affogato" {
		t.Fatalf("name=%q", v.Name)
	}
}

func TestMapOrder_DeliveredBoundary(t *testing.T) {
	cat := catalog.NewStore()
	created := time.UnixMilli(1_000_000)

	cases := []struct {
		name      string
		elapsed   int64
		delivered bool
	}{
		{"immediately", 0, false},
		{"just under", 119_999, false},
		{"exactly window", 120_000, false},
		{"just over", 120_001, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := Record{ID: "o1", CoffeeID: 1, Size: catalog.SizeSmall, CreatedAt: created.UnixMilli()}
			now := time.UnixMilli(created.UnixMilli() + tc.elapsed)

			if v := MapOrder(rec, cat, now); v.Delivered != tc.delivered {
				t.Fatalf("elapsed=%dms delivered=%v want=%v", tc.elapsed, v.Delivered, tc.delivered)
			}
		})
	}
}

func TestMapOrder_UnknownCoffee(t *testing.T) {
	cat := catalog.NewStore()
	now := time.Now()

	rec := Record{ID: "o1", CoffeeID: 999, Size: catalog.SizeLarge, CreatedAt: now.UnixMilli()}
	v := MapOrder(rec, cat, now)

	if v.ID != "o1" || v.CoffeeID != 999 || v.Size != catalog.SizeLarge {
		t.Fatalf("order fields lost: %+v", v)
	}
	if v.Shop != "" || v.Name != "" || v.Description != "" {
		t.Fatalf("placeholder has display fields: %+v", v)
	}
	if v.PaidPrice != nil {
		t.Fatalf("placeholder has price: %v", *v.PaidPrice)
	}
	if v.Tags == nil || len(v.Tags) != 0 {
		t.Fatalf("tags=%v, want empty non-nil", v.Tags)
	}
}
