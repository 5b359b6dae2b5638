package interfaces

import (
	"context"
	"time"

	"photostudio/internal/domain/entities"
)

// OrderFilters narrows FetchOrders results. Zero values mean "no filter".
// Search matches case-insensitively against order number, customer name and
// customer email.
type OrderFilters struct {
	Status      entities.OrderStatus
	ServiceType entities.ServiceType
	DateFrom    *time.Time
	DateTo      *time.Time
	Search      string
}

// OrderStatusUpdate is an admin-side status transition command.
type OrderStatusUpdate struct {
	Status              entities.OrderStatus
	Message             string
	Progress            *int
	EstimatedCompletion *time.Time
	Files               []DeliveredFile
}

// DeliveredFile is a finished file attached by a status update; the order
// manager stamps it into a Deliverable.
type DeliveredFile struct {
	URL  string
	Name string
	Type entities.DeliverableType
}

// IOrderBackend abstracts the remote order service. The storefront keeps its
// local order collection functional regardless of backend availability; the
// placeholder backend reports "order service not yet implemented" on every
// call.
type IOrderBackend interface {
	FetchOrders(ctx context.Context, filters OrderFilters) ([]entities.CustomOrder, error)
	FetchOrder(ctx context.Context, id string) (entities.CustomOrder, error)
	CreateOrder(ctx context.Context, order entities.CustomOrder) (entities.CustomOrder, error)
	UpdateOrder(ctx context.Context, order entities.CustomOrder) (entities.CustomOrder, error)
}
