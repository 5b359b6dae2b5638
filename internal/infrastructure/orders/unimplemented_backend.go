package orders

import (
	"context"
	"errors"
	"log"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"
)

// ErrOrderBackendUnavailable is reported by every call of the placeholder
// backend. The message is matched by the order use case and surfaced to
// customers as a non-technical "not yet implemented" notice.
var ErrOrderBackendUnavailable = errors.New("order service not yet implemented")

// UnimplementedOrderBackend mirrors the reference storefront's order API
// placeholders, which always fail. Deployments wire the DynamoDB-backed
// repository instead once the backend exists; the storefront's local order
// collection keeps working either way.
type UnimplementedOrderBackend struct{}

var _ interfaces.IOrderBackend = (*UnimplementedOrderBackend)(nil)

func NewUnimplementedOrderBackend() *UnimplementedOrderBackend {
	return &UnimplementedOrderBackend{}
}

func (b *UnimplementedOrderBackend) FetchOrders(_ context.Context, _ interfaces.OrderFilters) ([]entities.CustomOrder, error) {
	log.Printf("[orders][backend] fetch-orders unavailable")
	return nil, ErrOrderBackendUnavailable
}

func (b *UnimplementedOrderBackend) FetchOrder(_ context.Context, id string) (entities.CustomOrder, error) {
	log.Printf("[orders][backend] fetch-order unavailable order_id=%s", id)
	return entities.CustomOrder{}, ErrOrderBackendUnavailable
}

func (b *UnimplementedOrderBackend) CreateOrder(_ context.Context, order entities.CustomOrder) (entities.CustomOrder, error) {
	log.Printf("[orders][backend] create-order unavailable order_number=%s", order.OrderNumber)
	return entities.CustomOrder{}, ErrOrderBackendUnavailable
}

func (b *UnimplementedOrderBackend) UpdateOrder(_ context.Context, order entities.CustomOrder) (entities.CustomOrder, error) {
	log.Printf("[orders][backend] update-order unavailable order_id=%s", order.ID)
	return entities.CustomOrder{}, ErrOrderBackendUnavailable
}
