package entities

// CartItem is a single line item in the shopping cart.
//
// Items are addressed by VariantID: the cart never holds two line items for
// the same variant, adding an existing variant merges quantities instead.
type CartItem struct {
	ProductID string  `json:"productId"`
	VariantID string  `json:"variantId"`
	Quantity  int     `json:"quantity"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"price"`
	ImageRef  string  `json:"image,omitempty"`
}

// Cart is the shopping cart snapshot.
//
// Persistence model (snapshot store):
//   - serialized whole as JSON under a fixed key
//   - Total is written for compatibility with older snapshots but is always
//     recomputed from Items on load; Items and Currency are the source of truth.
type Cart struct {
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	Currency string     `json:"currency"`
}

// TotalItems returns the summed quantity across all line items.
func (c Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice returns the summed quantity*unitPrice across all line items.
func (c Cart) TotalPrice() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}

// Clone returns a deep copy so callers can hold a snapshot without racing
// subsequent cart mutations.
func (c Cart) Clone() Cart {
	out := Cart{
		Items:    make([]CartItem, len(c.Items)),
		Total:    c.Total,
		Currency: c.Currency,
	}
	copy(out.Items, c.Items)
	return out
}
