package commerce

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoCheckoutGateway hands carts off to Mercado Pago checkout.
//
// Each checkout becomes a preference; the preference init point is the
// redirect target the storefront sends the customer to. Mock mode (env
// CHECKOUT_GATEWAY_MOCK) validates lines and fabricates a session without
// touching the network.
type MercadoPagoCheckoutGateway struct {
	client   preference.Client
	sandbox  bool
	mockMode bool
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoCheckoutGateway)(nil)

func NewMercadoPagoCheckoutGateway(accessToken string) (*MercadoPagoCheckoutGateway, error) {
	if isCheckoutGatewayMockEnabled() {
		log.Printf("[checkout][gateway] mock mode enabled")
		return &MercadoPagoCheckoutGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[checkout][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][gateway] Mercado Pago client initialized")

	return &MercadoPagoCheckoutGateway{
		client:  preference.NewClient(cfg),
		sandbox: strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-"),
	}, nil
}

func (g *MercadoPagoCheckoutGateway) CreateCheckout(ctx context.Context, lines []entities.CheckoutLine) (entities.CheckoutSession, error) {
	if fieldErrs := validateLines(lines); len(fieldErrs) > 0 {
		log.Printf("[checkout][gateway] create rejected field_errors=%d", len(fieldErrs))
		return entities.CheckoutSession{}, &interfaces.CheckoutRejectedError{Errors: fieldErrs}
	}

	if g != nil && g.mockMode {
		session := mockSession(lines)
		log.Printf("[checkout][gateway] mock create success checkout_id=%s total=%.2f", session.CheckoutID, session.TotalPrice)
		return session, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[checkout][gateway] create start lines=%d", len(lines))
	resp, err := g.client.Create(ctx, buildPreferenceRequest(lines))
	if err != nil {
		log.Printf("[checkout][gateway] sdk create failed err=%v", err)
		return entities.CheckoutSession{}, classifyProviderError(err)
	}

	session := g.toSession(resp, lines)
	log.Printf("[checkout][gateway] create success checkout_id=%s total=%.2f %s", session.CheckoutID, session.TotalPrice, session.Currency)
	return session, nil
}

func (g *MercadoPagoCheckoutGateway) AddLineItems(ctx context.Context, checkoutID string, lines []entities.CheckoutLine) (entities.CheckoutSession, error) {
	if fieldErrs := validateLines(lines); len(fieldErrs) > 0 {
		log.Printf("[checkout][gateway] add-items rejected checkout_id=%s field_errors=%d", checkoutID, len(fieldErrs))
		return entities.CheckoutSession{}, &interfaces.CheckoutRejectedError{Errors: fieldErrs}
	}

	if g != nil && g.mockMode {
		session := mockSession(lines)
		session.CheckoutID = checkoutID
		log.Printf("[checkout][gateway] mock add-items success checkout_id=%s", checkoutID)
		return session, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[checkout][gateway] gateway not configured")
		return entities.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[checkout][gateway] add-items start checkout_id=%s lines=%d", checkoutID, len(lines))
	resp, err := g.client.Update(ctx, checkoutID, buildPreferenceRequest(lines))
	if err != nil {
		log.Printf("[checkout][gateway] sdk update failed checkout_id=%s err=%v", checkoutID, err)
		return entities.CheckoutSession{}, classifyProviderError(err)
	}

	session := g.toSession(resp, lines)
	log.Printf("[checkout][gateway] add-items success checkout_id=%s", session.CheckoutID)
	return session, nil
}

func (g *MercadoPagoCheckoutGateway) toSession(resp *preference.Response, lines []entities.CheckoutLine) entities.CheckoutSession {
	redirect := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		redirect = resp.SandboxInitPoint
	}

	total := 0.0
	currency := checkoutCurrency()
	for _, it := range resp.Items {
		total += float64(it.Quantity) * it.UnitPrice
		if it.CurrencyID != "" {
			currency = it.CurrencyID
		}
	}
	if total == 0 {
		total = linesTotal(lines)
	}

	return entities.CheckoutSession{
		CheckoutID:  resp.ID,
		RedirectURL: redirect,
		TotalPrice:  total,
		Currency:    currency,
	}
}

func buildPreferenceRequest(lines []entities.CheckoutLine) preference.Request {
	currency := checkoutCurrency()
	items := make([]preference.ItemRequest, 0, len(lines))
	for _, l := range lines {
		items = append(items, preference.ItemRequest{
			ID:         l.VariantID,
			Title:      l.Title,
			Quantity:   l.Quantity,
			CurrencyID: currency,
			UnitPrice:  l.UnitPrice,
		})
	}
	return preference.Request{
		Items:             items,
		ExternalReference: uuid.NewString(),
	}
}

func validateLines(lines []entities.CheckoutLine) []interfaces.FieldError {
	var fieldErrs []interfaces.FieldError
	for i, l := range lines {
		if strings.TrimSpace(l.VariantID) == "" {
			fieldErrs = append(fieldErrs, interfaces.FieldError{
				Field:   fmt.Sprintf("lineItems[%d].variantId", i),
				Message: "Variant id is required.",
			})
		}
		if l.Quantity < 1 {
			fieldErrs = append(fieldErrs, interfaces.FieldError{
				Field:   fmt.Sprintf("lineItems[%d].quantity", i),
				Message: "Quantity must be at least 1.",
			})
		}
	}
	return fieldErrs
}

func mockSession(lines []entities.CheckoutLine) entities.CheckoutSession {
	id := fmt.Sprintf("%d", time.Now().UTC().UnixNano())
	return entities.CheckoutSession{
		CheckoutID:  id,
		RedirectURL: fmt.Sprintf("https://sandbox.mercadopago.com/checkout/v1/redirect?pref_id=%s", id),
		TotalPrice:  linesTotal(lines),
		Currency:    checkoutCurrency(),
	}
}

func linesTotal(lines []entities.CheckoutLine) float64 {
	total := 0.0
	for _, l := range lines {
		total += float64(l.Quantity) * l.UnitPrice
	}
	return total
}

// classifyProviderError keeps provider validation complaints recoverable: a
// 400-class answer becomes a CheckoutRejectedError the customer can act on,
// anything else stays an opaque gateway failure.
func classifyProviderError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "\"status\":400") || strings.Contains(msg, "\"error\":\"bad_request\"") {
		return &interfaces.CheckoutRejectedError{Errors: []interfaces.FieldError{{Message: err.Error()}}}
	}
	return err
}

func checkoutCurrency() string {
	if v := strings.TrimSpace(os.Getenv("CHECKOUT_CURRENCY")); v != "" {
		return v
	}
	return "USD"
}

func isCheckoutGatewayMockEnabled() bool {
	for _, key := range []string{"CHECKOUT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
