package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCheckoutID  = errors.New("invalid checkout id")
	ErrCheckoutInFlight   = errors.New("a checkout is already in progress")
	ErrCheckoutGateway    = errors.New("checkout provider unavailable")
	ErrCheckoutUnresolved = errors.New("checkout provider returned no session")
)

// ICheckoutUseCase converts a frozen cart snapshot into an external checkout
// and hands control to the provider.
//
// A successful handoff returns the redirect target; navigating there is the
// caller's job. The cart is NOT cleared by the handoff unless the
// clear-after-handoff switch is enabled; by default clearing is left to the
// provider's post-payment flow. A failed checkout commits no
// state: the cart is left exactly as it was so the customer can retry.

type ICheckoutUseCase interface {
	Checkout(ctx context.Context, lines []entities.CheckoutLine) (entities.CheckoutSession, error)
	AddItemsToCheckout(ctx context.Context, checkoutID string, lines []entities.CheckoutLine) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	gateway           interfaces.ICheckoutGateway
	cart              ICartUseCase
	clearAfterHandoff bool

	mu       sync.Mutex
	inFlight bool
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the orchestrator. cart may be nil; it is only
// consulted when clearAfterHandoff is enabled.
func NewCheckoutUseCase(gateway interfaces.ICheckoutGateway, cart ICartUseCase, clearAfterHandoff bool) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, cart: cart, clearAfterHandoff: clearAfterHandoff}
}

func (u *CheckoutUseCase) Checkout(ctx context.Context, lines []entities.CheckoutLine) (entities.CheckoutSession, error) {
	if len(lines) == 0 {
		return entities.CheckoutSession{}, ErrEmptyCart
	}
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrCheckoutGateway
	}
	if !u.begin() {
		return entities.CheckoutSession{}, ErrCheckoutInFlight
	}
	defer u.end()

	log.Printf("[checkout][usecase] create start lines=%d", len(lines))
	session, err := u.gateway.CreateCheckout(ctx, lines)
	if err != nil {
		log.Printf("[checkout][usecase] create failed err=%v", err)
		return entities.CheckoutSession{}, err
	}
	if session.RedirectURL == "" {
		log.Printf("[checkout][usecase] create returned no redirect target")
		return entities.CheckoutSession{}, ErrCheckoutUnresolved
	}

	if u.clearAfterHandoff && u.cart != nil {
		u.cart.ClearCart(ctx)
		log.Printf("[checkout][usecase] cart cleared after handoff checkout_id=%s", session.CheckoutID)
	}

	log.Printf("[checkout][usecase] create success checkout_id=%s total=%.2f %s", session.CheckoutID, session.TotalPrice, session.Currency)
	return session, nil
}

func (u *CheckoutUseCase) AddItemsToCheckout(ctx context.Context, checkoutID string, lines []entities.CheckoutLine) (entities.CheckoutSession, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return entities.CheckoutSession{}, ErrInvalidCheckoutID
	}
	if len(lines) == 0 {
		return entities.CheckoutSession{}, ErrEmptyCart
	}
	if u.gateway == nil {
		return entities.CheckoutSession{}, ErrCheckoutGateway
	}
	if !u.begin() {
		return entities.CheckoutSession{}, ErrCheckoutInFlight
	}
	defer u.end()

	log.Printf("[checkout][usecase] add-items start checkout_id=%s lines=%d", checkoutID, len(lines))
	session, err := u.gateway.AddLineItems(ctx, checkoutID, lines)
	if err != nil {
		log.Printf("[checkout][usecase] add-items failed checkout_id=%s err=%v", checkoutID, err)
		return entities.CheckoutSession{}, err
	}
	if session.RedirectURL == "" {
		return entities.CheckoutSession{}, ErrCheckoutUnresolved
	}

	log.Printf("[checkout][usecase] add-items success checkout_id=%s", session.CheckoutID)
	return session, nil
}

// LinesFromCart converts a cart snapshot into provider line items. Line
// identity on the wire is variant id plus quantity; title and unit price
// ride along for provider-side pricing.
func LinesFromCart(cart entities.Cart) []entities.CheckoutLine {
	lines := make([]entities.CheckoutLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, entities.CheckoutLine{
			VariantID: it.VariantID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return lines
}

func (u *CheckoutUseCase) begin() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inFlight {
		return false
	}
	u.inFlight = true
	return true
}

func (u *CheckoutUseCase) end() {
	u.mu.Lock()
	u.inFlight = false
	u.mu.Unlock()
}
