package request

import "photostudio/internal/domain/entities"

type CheckoutLineRequest struct {
	VariantID string  `json:"variantId" binding:"required"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price"`
}

// CreateCheckoutRequest optionally overrides the cart with explicit line
// items. An empty body means "check out the current cart".
type CreateCheckoutRequest struct {
	LineItems []CheckoutLineRequest `json:"lineItems"`
}

func (r CreateCheckoutRequest) ResolveLines() []entities.CheckoutLine {
	return resolveCheckoutLines(r.LineItems)
}

// AddCheckoutItemsRequest appends line items to an existing provider
// checkout.
type AddCheckoutItemsRequest struct {
	LineItems []CheckoutLineRequest `json:"lineItems" binding:"required"`
}

func (r AddCheckoutItemsRequest) ResolveLines() []entities.CheckoutLine {
	return resolveCheckoutLines(r.LineItems)
}

func resolveCheckoutLines(items []CheckoutLineRequest) []entities.CheckoutLine {
	lines := make([]entities.CheckoutLine, 0, len(items))
	for _, li := range items {
		lines = append(lines, entities.CheckoutLine{
			VariantID: li.VariantID,
			Title:     li.Title,
			Quantity:  li.Quantity,
			UnitPrice: li.Price,
		})
	}
	return lines
}
