package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderValidation    = errors.New("invalid order input")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderTerminal      = errors.New("order is in a terminal status")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrServiceUnavailable = errors.New("service not yet implemented")
)

// CreateOrderInput is the boundary payload for order submission. Identity,
// order number, status and tracking are assigned by the use case.
type CreateOrderInput struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string

	Items    []entities.OrderItem
	Total    float64
	Currency string

	ServiceType    entities.ServiceType
	Urgency        entities.Urgency
	DeliveryFormat entities.DeliveryFormat

	Description         string
	SpecialInstructions string

	Photos []entities.UploadedPhoto
}

// IOrderUseCase owns the lifecycle of custom photo-service orders: creation,
// status transitions, status history, filtering and statistics.
//
// The in-memory collection (most-recent-first) works standalone; when a
// remote order backend is configured it is authoritative and its
// unavailability surfaces as ErrServiceUnavailable without corrupting local
// state.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (entities.CustomOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID string, update interfaces.OrderStatusUpdate) (entities.CustomOrder, error)
	FetchOrders(ctx context.Context, filters interfaces.OrderFilters) ([]entities.CustomOrder, error)
	FetchOrder(ctx context.Context, orderID string) (entities.CustomOrder, error)
	ComputeStats() entities.OrderStats
}

type OrderUseCase struct {
	backend interfaces.IOrderBackend
	mailer  interfaces.IMailer

	mu        sync.Mutex
	orders    []entities.CustomOrder
	listeners []func(entities.CustomOrder)
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase builds an order manager. backend and mailer may be nil:
// without a backend the local collection is authoritative, without a mailer
// no notifications go out.
func NewOrderUseCase(backend interfaces.IOrderBackend, mailer interfaces.IMailer) *OrderUseCase {
	return &OrderUseCase{backend: backend, mailer: mailer}
}

// Subscribe registers an observer invoked with the affected order after every
// successful create or status update.
func (u *OrderUseCase) Subscribe(fn func(entities.CustomOrder)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.listeners = append(u.listeners, fn)
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (entities.CustomOrder, error) {
	if err := validateOrderInput(input); err != nil {
		log.Printf("[order][usecase] create rejected err=%v", err)
		return entities.CustomOrder{}, err
	}

	now := time.Now().UTC()
	order := entities.CustomOrder{
		ID:                  uuid.NewString(),
		OrderNumber:         generateOrderNumber(now),
		CustomerID:          input.CustomerID,
		CustomerName:        strings.TrimSpace(input.CustomerName),
		CustomerEmail:       strings.TrimSpace(input.CustomerEmail),
		Items:               input.Items,
		Total:               input.Total,
		Currency:            input.Currency,
		ServiceType:         input.ServiceType,
		Urgency:             input.Urgency,
		DeliveryFormat:      input.DeliveryFormat,
		Description:         strings.TrimSpace(input.Description),
		SpecialInstructions: strings.TrimSpace(input.SpecialInstructions),
		Photos:              input.Photos,
		Status:              entities.OrderStatusPending,
		Tracking: entities.OrderTracking{
			Progress:    0,
			LastUpdated: now,
			StatusHistory: []entities.StatusEvent{{
				Status:    entities.OrderStatusPending,
				Timestamp: now,
				Message:   "Order received",
				UpdatedBy: entities.StatusActorSystem,
			}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if u.backend != nil {
		created, err := u.backend.CreateOrder(ctx, order)
		if err != nil {
			log.Printf("[order][usecase] backend create failed order_number=%s err=%v", order.OrderNumber, err)
			return entities.CustomOrder{}, mapBackendError(err)
		}
		order = created
	}

	u.mu.Lock()
	// Most-recent-first is the canonical listing order.
	u.orders = append([]entities.CustomOrder{order}, u.orders...)
	u.mu.Unlock()

	log.Printf("[order][usecase] create success order_id=%s order_number=%s service_type=%s", order.ID, order.OrderNumber, order.ServiceType)
	u.notifyMail(ctx, order, "")
	u.notify(order)
	return order, nil
}

func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID string, update interfaces.OrderStatusUpdate) (entities.CustomOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.CustomOrder{}, ErrOrderNotFound
	}
	if !update.Status.Valid() {
		return entities.CustomOrder{}, ErrInvalidOrderStatus
	}

	u.mu.Lock()
	idx := u.indexOfLocked(orderID)
	if idx < 0 {
		u.mu.Unlock()
		log.Printf("[order][usecase] update not-found order_id=%s", orderID)
		return entities.CustomOrder{}, ErrOrderNotFound
	}

	current := u.orders[idx]
	if current.Status.Terminal() {
		u.mu.Unlock()
		log.Printf("[order][usecase] update rejected order_id=%s status=%s new_status=%s", orderID, current.Status, update.Status)
		return entities.CustomOrder{}, ErrOrderTerminal
	}

	updated := applyStatusUpdate(current, update, time.Now().UTC())

	if u.backend != nil {
		u.mu.Unlock()
		persisted, err := u.backend.UpdateOrder(ctx, updated)
		if err != nil {
			log.Printf("[order][usecase] backend update failed order_id=%s err=%v", orderID, err)
			return entities.CustomOrder{}, mapBackendError(err)
		}
		if persisted.ID == "" {
			return entities.CustomOrder{}, ErrOrderNotFound
		}
		updated = persisted
		u.mu.Lock()
		idx = u.indexOfLocked(orderID)
		if idx < 0 {
			u.mu.Unlock()
			return entities.CustomOrder{}, ErrOrderNotFound
		}
	}

	u.orders[idx] = updated
	u.mu.Unlock()

	log.Printf("[order][usecase] update success order_id=%s status=%s progress=%d history_len=%d", updated.ID, updated.Status, updated.Tracking.Progress, len(updated.Tracking.StatusHistory))
	u.notifyMail(ctx, updated, update.Message)
	u.notify(updated)
	return updated, nil
}

// FetchOrders returns orders matching filters; it never mutates the
// collection.
func (u *OrderUseCase) FetchOrders(ctx context.Context, filters interfaces.OrderFilters) ([]entities.CustomOrder, error) {
	if u.backend != nil {
		orders, err := u.backend.FetchOrders(ctx, filters)
		if err != nil {
			log.Printf("[order][usecase] backend fetch failed err=%v", err)
			return nil, mapBackendError(err)
		}
		return orders, nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]entities.CustomOrder, 0, len(u.orders))
	for _, order := range u.orders {
		if matchesFilters(order, filters) {
			out = append(out, order)
		}
	}
	return out, nil
}

func (u *OrderUseCase) FetchOrder(ctx context.Context, orderID string) (entities.CustomOrder, error) {
	if u.backend != nil {
		order, err := u.backend.FetchOrder(ctx, orderID)
		if err != nil {
			return entities.CustomOrder{}, mapBackendError(err)
		}
		if order.ID == "" {
			return entities.CustomOrder{}, ErrOrderNotFound
		}
		return order, nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOfLocked(orderID)
	if idx < 0 {
		return entities.CustomOrder{}, ErrOrderNotFound
	}
	return u.orders[idx], nil
}

// ComputeStats derives counters and revenue from the full collection on
// demand, so it can never drift from the orders themselves.
func (u *OrderUseCase) ComputeStats() entities.OrderStats {
	u.mu.Lock()
	defer u.mu.Unlock()

	stats := entities.OrderStats{Total: len(u.orders)}
	for _, order := range u.orders {
		switch order.Status {
		case entities.OrderStatusPending:
			stats.Pending++
		case entities.OrderStatusConfirmed:
			stats.Confirmed++
		case entities.OrderStatusInProgress:
			stats.InProgress++
		case entities.OrderStatusReview:
			stats.Review++
		case entities.OrderStatusCompleted:
			stats.Completed++
		case entities.OrderStatusDelivered:
			stats.Delivered++
		case entities.OrderStatusCancelled:
			stats.Cancelled++
		}
		if order.Status != entities.OrderStatusCancelled {
			stats.TotalRevenue += order.Total
		}
	}
	if stats.Completed > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.Completed)
	}
	return stats
}

func (u *OrderUseCase) indexOfLocked(orderID string) int {
	for i := range u.orders {
		if u.orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func (u *OrderUseCase) notify(order entities.CustomOrder) {
	u.mu.Lock()
	listeners := make([]func(entities.CustomOrder), len(u.listeners))
	copy(listeners, u.listeners)
	u.mu.Unlock()

	for _, fn := range listeners {
		fn(order)
	}
}

// notifyMail sends a best-effort notification; mail failures never block the
// order lifecycle.
func (u *OrderUseCase) notifyMail(ctx context.Context, order entities.CustomOrder, message string) {
	if u.mailer == nil {
		return
	}
	var err error
	if message == "" {
		err = u.mailer.SendOrderReceived(ctx, order)
	} else {
		err = u.mailer.SendOrderStatusUpdate(ctx, order, message)
	}
	if err != nil {
		log.Printf("[order][usecase] mail notification failed order_id=%s err=%v", order.ID, err)
	}
}

func validateOrderInput(input CreateOrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrOrderValidation)
	}
	if strings.TrimSpace(input.CustomerEmail) == "" {
		return fmt.Errorf("%w: customer email is required", ErrOrderValidation)
	}
	if !input.ServiceType.Valid() {
		return fmt.Errorf("%w: unknown service type %q", ErrOrderValidation, input.ServiceType)
	}
	if strings.TrimSpace(input.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrOrderValidation)
	}
	if len(input.Photos) == 0 {
		return fmt.Errorf("%w: at least one photo is required", ErrOrderValidation)
	}
	if input.Total < 0 {
		return fmt.Errorf("%w: total cannot be negative", ErrOrderValidation)
	}
	return nil
}

func applyStatusUpdate(order entities.CustomOrder, update interfaces.OrderStatusUpdate, now time.Time) entities.CustomOrder {
	order.Status = update.Status
	order.UpdatedAt = now
	order.Tracking.LastUpdated = now

	if update.Progress != nil {
		progress := *update.Progress
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		order.Tracking.Progress = progress
	}
	if update.EstimatedCompletion != nil {
		order.Tracking.EstimatedCompletion = update.EstimatedCompletion
	}
	if update.Status == entities.OrderStatusCompleted || update.Status == entities.OrderStatusDelivered {
		order.Tracking.ActualCompletion = &now
	}

	history := make([]entities.StatusEvent, len(order.Tracking.StatusHistory), len(order.Tracking.StatusHistory)+1)
	copy(history, order.Tracking.StatusHistory)
	order.Tracking.StatusHistory = append(history, entities.StatusEvent{
		Status:    update.Status,
		Timestamp: now,
		Message:   update.Message,
		UpdatedBy: entities.StatusActorAdmin,
	})

	if len(update.Files) > 0 {
		deliverables := make([]entities.Deliverable, len(order.Deliverables), len(order.Deliverables)+len(update.Files))
		copy(deliverables, order.Deliverables)
		for _, f := range update.Files {
			deliverables = append(deliverables, entities.Deliverable{
				ID:          uuid.NewString(),
				URL:         f.URL,
				Name:        f.Name,
				Type:        f.Type,
				DeliveredAt: now,
			})
		}
		order.Deliverables = deliverables
	}
	return order
}

func matchesFilters(order entities.CustomOrder, filters interfaces.OrderFilters) bool {
	if filters.Status != "" && order.Status != filters.Status {
		return false
	}
	if filters.ServiceType != "" && order.ServiceType != filters.ServiceType {
		return false
	}
	if filters.DateFrom != nil && order.CreatedAt.Before(*filters.DateFrom) {
		return false
	}
	if filters.DateTo != nil && order.CreatedAt.After(*filters.DateTo) {
		return false
	}
	if s := strings.TrimSpace(filters.Search); s != "" {
		needle := strings.ToLower(s)
		if !strings.Contains(strings.ToLower(order.OrderNumber), needle) &&
			!strings.Contains(strings.ToLower(order.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(order.CustomerEmail), needle) {
			return false
		}
	}
	return true
}

func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

func mapBackendError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrServiceUnavailable) || isBackendUnimplemented(err) {
		return ErrServiceUnavailable
	}
	return err
}

func isBackendUnimplemented(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "not yet implemented")
}
