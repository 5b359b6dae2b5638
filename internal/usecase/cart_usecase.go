package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"
)

const cartSnapshotKey = "photostudio-cart"

const defaultCartCurrency = "USD"

var (
	ErrInvalidCartItem = errors.New("invalid cart item")
)

// ICartUseCase owns the shopping cart: line items, quantities, totals and
// currency.
//
// Totals are always recomputed from the stored items; there is no separately
// maintained total field that could diverge. Every mutation is persisted to
// the snapshot store; a snapshot that fails to parse on startup degrades to
// an empty cart.

type ICartUseCase interface {
	AddItem(ctx context.Context, item entities.CartItem) error
	RemoveItem(ctx context.Context, variantID string)
	UpdateQuantity(ctx context.Context, variantID string, quantity int)
	ClearCart(ctx context.Context)
	Snapshot() entities.Cart
	TotalItems() int
	TotalPrice() float64
}

type CartUseCase struct {
	store interfaces.ISnapshotStore

	mu        sync.Mutex
	cart      entities.Cart
	listeners []func(entities.Cart)
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(ctx context.Context, store interfaces.ISnapshotStore) *CartUseCase {
	u := &CartUseCase{
		store: store,
		cart:  entities.Cart{Currency: defaultCartCurrency},
	}
	u.restore(ctx)
	return u
}

// Subscribe registers an observer invoked with a cart snapshot after every
// mutation. Observers run synchronously inside the mutating call.
func (u *CartUseCase) Subscribe(fn func(entities.Cart)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.listeners = append(u.listeners, fn)
}

func (u *CartUseCase) AddItem(ctx context.Context, item entities.CartItem) error {
	if strings.TrimSpace(item.VariantID) == "" || item.Quantity < 1 || item.UnitPrice < 0 {
		log.Printf("[cart][usecase] rejected add variant_id=%q quantity=%d unit_price=%.2f", item.VariantID, item.Quantity, item.UnitPrice)
		return ErrInvalidCartItem
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	merged := false
	for i := range u.cart.Items {
		if u.cart.Items[i].VariantID == item.VariantID {
			u.cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		u.cart.Items = append(u.cart.Items, item)
	}

	log.Printf("[cart][usecase] add variant_id=%s quantity=%d merged=%t total_items=%d", item.VariantID, item.Quantity, merged, u.cart.TotalItems())
	u.persistLocked(ctx)
	u.notifyLocked()
	return nil
}

// RemoveItem deletes the matching line item. A missing variant is a no-op,
// not an error.
func (u *CartUseCase) RemoveItem(ctx context.Context, variantID string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.cart.Items {
		if u.cart.Items[i].VariantID == variantID {
			u.cart.Items = append(u.cart.Items[:i], u.cart.Items[i+1:]...)
			log.Printf("[cart][usecase] remove variant_id=%s total_items=%d", variantID, u.cart.TotalItems())
			u.persistLocked(ctx)
			u.notifyLocked()
			return
		}
	}
}

// UpdateQuantity clamps quantity to >= 0; zero removes the item. A missing
// variant is a no-op.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, variantID string, quantity int) {
	if quantity < 0 {
		quantity = 0
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.cart.Items {
		if u.cart.Items[i].VariantID != variantID {
			continue
		}
		if quantity == 0 {
			u.cart.Items = append(u.cart.Items[:i], u.cart.Items[i+1:]...)
		} else {
			u.cart.Items[i].Quantity = quantity
		}
		log.Printf("[cart][usecase] update-quantity variant_id=%s quantity=%d total_items=%d", variantID, quantity, u.cart.TotalItems())
		u.persistLocked(ctx)
		u.notifyLocked()
		return
	}
}

// ClearCart empties the item list; the currency is retained.
func (u *CartUseCase) ClearCart(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.cart.Items = nil
	log.Printf("[cart][usecase] clear")
	u.persistLocked(ctx)
	u.notifyLocked()
}

// Snapshot returns a frozen copy of the cart with the total recomputed; the
// checkout orchestrator reads this at the moment of handoff.
func (u *CartUseCase) Snapshot() entities.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := u.cart.Clone()
	out.Total = out.TotalPrice()
	return out
}

func (u *CartUseCase) TotalItems() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.TotalItems()
}

func (u *CartUseCase) TotalPrice() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cart.TotalPrice()
}

func (u *CartUseCase) restore(ctx context.Context) {
	raw, found, err := u.store.Get(ctx, cartSnapshotKey)
	if err != nil {
		log.Printf("[cart][usecase] snapshot load failed; starting empty err=%v", err)
		return
	}
	if !found {
		return
	}

	var saved entities.Cart
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		log.Printf("[cart][usecase] snapshot parse failed; starting empty err=%v", err)
		return
	}

	if saved.Currency == "" {
		saved.Currency = defaultCartCurrency
	}
	// Stored totals are advisory; items are the source of truth.
	saved.Total = saved.TotalPrice()
	u.cart = saved
	log.Printf("[cart][usecase] snapshot restored items=%d total_items=%d", len(saved.Items), saved.TotalItems())
}

func (u *CartUseCase) persistLocked(ctx context.Context) {
	snapshot := u.cart.Clone()
	snapshot.Total = snapshot.TotalPrice()

	b, err := json.Marshal(snapshot)
	if err != nil {
		log.Printf("[cart][usecase] snapshot marshal failed err=%v", err)
		return
	}
	if err := u.store.Set(ctx, cartSnapshotKey, string(b)); err != nil {
		log.Printf("[cart][usecase] snapshot write failed err=%v", err)
	}
}

func (u *CartUseCase) notifyLocked() {
	if len(u.listeners) == 0 {
		return
	}
	snapshot := u.cart.Clone()
	snapshot.Total = snapshot.TotalPrice()
	for _, fn := range u.listeners {
		fn(snapshot)
	}
}
