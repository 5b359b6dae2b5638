package request

import (
	"strings"

	"photostudio/internal/domain/entities"
)

// AddCartItemRequest is the payload for adding a line item to the cart.
type AddCartItemRequest struct {
	ProductID string  `json:"productId"`
	VariantID string  `json:"variantId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

func (r AddCartItemRequest) ToCartItem() entities.CartItem {
	return entities.CartItem{
		ProductID: strings.TrimSpace(r.ProductID),
		VariantID: strings.TrimSpace(r.VariantID),
		Quantity:  r.Quantity,
		Title:     strings.TrimSpace(r.Title),
		UnitPrice: r.Price,
		ImageRef:  r.Image,
	}
}

// UpdateQuantityRequest sets an absolute quantity for a variant. A pointer
// distinguishes an explicit zero (remove the item) from a missing field.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
