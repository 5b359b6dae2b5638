package response

import (
	"testing"

	"photostudio/internal/domain/entities"
)

func TestFromCart(t *testing.T) {
	cart := entities.Cart{
		Items: []entities.CartItem{
			{ProductID: "p1", VariantID: "v1", Quantity: 2, UnitPrice: 25, Title: "Canvas Print"},
			{ProductID: "p2", VariantID: "v2", Quantity: 1, UnitPrice: 45.50, Title: "Framed Photo"},
		},
		Currency: "USD",
	}

	res := FromCart(cart)
	if len(res.Items) != 2 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Items[0].VariantID != "v1" || res.Items[0].Price != 25 {
		t.Fatalf("unexpected first item: %+v", res.Items[0])
	}
	if res.TotalItems != 3 {
		t.Fatalf("expected 3 total items, got %d", res.TotalItems)
	}
	if res.TotalPrice != 95.50 {
		t.Fatalf("expected total 95.50, got %.2f", res.TotalPrice)
	}
	if res.Currency != "USD" {
		t.Fatalf("unexpected currency %q", res.Currency)
	}
}

func TestFromCartEmpty(t *testing.T) {
	res := FromCart(entities.Cart{Currency: "USD"})
	if res.Items == nil {
		t.Fatalf("items must serialize as an empty list, not null")
	}
	if res.TotalItems != 0 || res.TotalPrice != 0 {
		t.Fatalf("expected zero totals, got %+v", res)
	}
}
