package interfaces

import (
	"context"
	"strings"

	"photostudio/internal/domain/entities"
)

// ICheckoutGateway abstracts the external commerce/checkout provider
// (e.g. Mercado Pago).
//
// CreateCheckout opens a new provider-side checkout from cart lines and
// returns the session the customer should be redirected to. AddLineItems
// extends a previously created checkout with the same response shape.
// Provider-side field validation failures surface as FieldErrors.
type ICheckoutGateway interface {
	CreateCheckout(ctx context.Context, lines []entities.CheckoutLine) (entities.CheckoutSession, error)
	AddLineItems(ctx context.Context, checkoutID string, lines []entities.CheckoutLine) (entities.CheckoutSession, error)
}

// FieldError is a provider-side validation error attached to a specific
// request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckoutRejectedError reports provider-side validation failures. The
// provider's messages are surfaced verbatim, joined, so the customer sees
// exactly what the provider objected to.
type CheckoutRejectedError struct {
	Errors []FieldError
}

func (e *CheckoutRejectedError) Error() string {
	return "checkout errors: " + e.Messages()
}

// Messages joins the provider messages in order.
func (e *CheckoutRejectedError) Messages() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, ", ")
}
