package entities

// CheckoutLine is one line handed to the external commerce provider. The
// provider addresses lines by variant id and quantity; title and unit price
// ride along so the provider-side request can be priced.
type CheckoutLine struct {
	VariantID string  `json:"variantId"`
	Title     string  `json:"title,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
}

// CheckoutSession is the provider's answer to a checkout handoff. The caller
// is responsible for navigating the customer to RedirectURL; the cart is not
// cleared by the handoff itself.
type CheckoutSession struct {
	CheckoutID  string  `json:"checkoutId"`
	RedirectURL string  `json:"redirectUrl"`
	TotalPrice  float64 `json:"totalPrice"`
	Currency    string  `json:"currency"`
}
