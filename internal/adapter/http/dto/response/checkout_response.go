package response

import (
	"photostudio/internal/domain/entities"
)

// CheckoutResponse exposes the redirect target under both redirectUrl and
// webUrl so older storefront clients keep working.
type CheckoutResponse struct {
	CheckoutID  string  `json:"checkoutId"`
	RedirectURL string  `json:"redirectUrl"`
	WebURL      string  `json:"webUrl"`
	TotalPrice  float64 `json:"totalPrice"`
	Currency    string  `json:"currency"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		CheckoutID:  s.CheckoutID,
		RedirectURL: s.RedirectURL,
		WebURL:      s.RedirectURL,
		TotalPrice:  s.TotalPrice,
		Currency:    s.Currency,
	}
}
