package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"
	mock_interfaces "photostudio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validOrderInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		Items:          []entities.OrderItem{{ID: "svc-1", Name: "Photo Restoration", Quantity: 1, Price: 150}},
		Total:          150,
		Currency:       "USD",
		ServiceType:    entities.ServiceTypeRestoration,
		Urgency:        entities.UrgencyStandard,
		DeliveryFormat: entities.DeliveryFormatDigital,
		Description:    "Restore a water-damaged family photo",
		Photos:         []entities.UploadedPhoto{{ID: "ph-1", URL: "https://cdn.example.com/ph-1.jpg", Name: "family.jpg"}},
	}
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input creates a pending order", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		order, err := uc.CreateOrder(ctx, validOrderInput())
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if order.ID == "" {
			t.Fatalf("expected generated id")
		}
		if !strings.HasPrefix(order.OrderNumber, "ORD-") {
			t.Fatalf("unexpected order number %q", order.OrderNumber)
		}
		if order.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending, got %s", order.Status)
		}
		if len(order.Tracking.StatusHistory) != 1 {
			t.Fatalf("expected 1 history entry, got %d", len(order.Tracking.StatusHistory))
		}
		if order.Tracking.StatusHistory[0].Status != entities.OrderStatusPending {
			t.Fatalf("history entry must match status")
		}
		if order.Tracking.StatusHistory[0].UpdatedBy != entities.StatusActorSystem {
			t.Fatalf("initial entry must be system-recorded")
		}
	})

	t.Run("validation rejection leaves the collection unchanged", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)

		input := validOrderInput()
		input.Description = "  "
		if _, err := uc.CreateOrder(ctx, input); !errors.Is(err, ErrOrderValidation) {
			t.Fatalf("expected ErrOrderValidation, got %v", err)
		}

		input = validOrderInput()
		input.Photos = nil
		if _, err := uc.CreateOrder(ctx, input); !errors.Is(err, ErrOrderValidation) {
			t.Fatalf("expected ErrOrderValidation, got %v", err)
		}

		input = validOrderInput()
		input.ServiceType = "sculpting"
		if _, err := uc.CreateOrder(ctx, input); !errors.Is(err, ErrOrderValidation) {
			t.Fatalf("expected ErrOrderValidation, got %v", err)
		}

		orders, err := uc.FetchOrders(ctx, interfaces.OrderFilters{})
		if err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if len(orders) != 0 {
			t.Fatalf("expected empty collection after rejections, got %d", len(orders))
		}
	})

	t.Run("most recent order lists first", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		first, _ := uc.CreateOrder(ctx, validOrderInput())
		second, _ := uc.CreateOrder(ctx, validOrderInput())

		orders, _ := uc.FetchOrders(ctx, interfaces.OrderFilters{})
		if len(orders) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(orders))
		}
		if orders[0].ID != second.ID || orders[1].ID != first.ID {
			t.Fatalf("expected most-recent-first ordering")
		}
	})

	t.Run("backend unavailability maps to service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrderBackend(ctrl)
		backend.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.CustomOrder{}, errors.New("order service not yet implemented"))

		uc := NewOrderUseCase(backend, nil)
		if _, err := uc.CreateOrder(ctx, validOrderInput()); !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
	})

	t.Run("mail failure does not block creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		mailer.EXPECT().SendOrderReceived(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		uc := NewOrderUseCase(nil, mailer)
		if _, err := uc.CreateOrder(ctx, validOrderInput()); err != nil {
			t.Fatalf("create should succeed despite mail failure: %v", err)
		}
	})
}

func TestOrderUseCase_UpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("each update appends exactly one history entry", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		order, _ := uc.CreateOrder(ctx, validOrderInput())

		progress := 50
		updated, err := uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{
			Status:   entities.OrderStatusInProgress,
			Message:  "Editing underway",
			Progress: &progress,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Status != entities.OrderStatusInProgress {
			t.Fatalf("expected in-progress, got %s", updated.Status)
		}
		if updated.Tracking.Progress != 50 {
			t.Fatalf("expected progress 50, got %d", updated.Tracking.Progress)
		}
		if len(updated.Tracking.StatusHistory) != 2 {
			t.Fatalf("expected 2 history entries, got %d", len(updated.Tracking.StatusHistory))
		}
		last := updated.Tracking.StatusHistory[len(updated.Tracking.StatusHistory)-1]
		if last.Status != updated.Status {
			t.Fatalf("last history entry must match current status")
		}
		if last.Message != "Editing underway" {
			t.Fatalf("unexpected message %q", last.Message)
		}
	})

	t.Run("progress clamps to 0..100", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		order, _ := uc.CreateOrder(ctx, validOrderInput())

		over := 140
		updated, _ := uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusReview, Progress: &over})
		if updated.Tracking.Progress != 100 {
			t.Fatalf("expected clamp to 100, got %d", updated.Tracking.Progress)
		}

		under := -5
		updated, _ = uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusCompleted, Progress: &under})
		if updated.Tracking.Progress != 0 {
			t.Fatalf("expected clamp to 0, got %d", updated.Tracking.Progress)
		}
	})

	t.Run("completion stamps actual completion", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		order, _ := uc.CreateOrder(ctx, validOrderInput())

		updated, err := uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusCompleted})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if updated.Tracking.ActualCompletion == nil {
			t.Fatalf("expected actual completion timestamp")
		}
	})

	t.Run("delivered files become stamped deliverables", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		order, _ := uc.CreateOrder(ctx, validOrderInput())

		updated, err := uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{
			Status: entities.OrderStatusDelivered,
			Files: []interfaces.DeliveredFile{
				{URL: "https://cdn.example.com/final.jpg", Name: "final.jpg", Type: entities.DeliverableTypeImage},
				{URL: "https://cdn.example.com/final.pdf", Name: "final.pdf", Type: entities.DeliverableTypeDocument},
			},
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if len(updated.Deliverables) != 2 {
			t.Fatalf("expected 2 deliverables, got %d", len(updated.Deliverables))
		}
		for _, d := range updated.Deliverables {
			if d.ID == "" || d.DeliveredAt.IsZero() {
				t.Fatalf("deliverable must be stamped: %+v", d)
			}
		}
	})

	t.Run("terminal status rejects further updates", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		order, _ := uc.CreateOrder(ctx, validOrderInput())

		if _, err := uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusCancelled}); err != nil {
			t.Fatalf("cancel failed: %v", err)
		}
		if _, err := uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusConfirmed}); !errors.Is(err, ErrOrderTerminal) {
			t.Fatalf("expected ErrOrderTerminal, got %v", err)
		}

		fetched, _ := uc.FetchOrder(ctx, order.ID)
		if len(fetched.Tracking.StatusHistory) != 2 {
			t.Fatalf("rejected update must not append history, got %d entries", len(fetched.Tracking.StatusHistory))
		}
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		order, _ := uc.CreateOrder(ctx, validOrderInput())

		if _, err := uc.UpdateOrderStatus(ctx, order.ID, interfaces.OrderStatusUpdate{Status: "archived"}); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("unknown order id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if _, err := uc.UpdateOrderStatus(ctx, "missing", interfaces.OrderStatusUpdate{Status: entities.OrderStatusConfirmed}); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestOrderUseCase_FetchOrders_Filters(t *testing.T) {
	ctx := context.Background()
	uc := NewOrderUseCase(nil, nil)

	restoration, _ := uc.CreateOrder(ctx, validOrderInput())

	editing := validOrderInput()
	editing.CustomerName = "Carlos Souza"
	editing.ServiceType = entities.ServiceTypeEditing
	other, _ := uc.CreateOrder(ctx, editing)
	_, _ = uc.UpdateOrderStatus(ctx, other.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusInProgress})

	t.Run("by status", func(t *testing.T) {
		orders, _ := uc.FetchOrders(ctx, interfaces.OrderFilters{Status: entities.OrderStatusPending})
		if len(orders) != 1 || orders[0].ID != restoration.ID {
			t.Fatalf("expected only the pending order")
		}
	})

	t.Run("by service type", func(t *testing.T) {
		orders, _ := uc.FetchOrders(ctx, interfaces.OrderFilters{ServiceType: entities.ServiceTypeEditing})
		if len(orders) != 1 || orders[0].ID != other.ID {
			t.Fatalf("expected only the editing order")
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		orders, _ := uc.FetchOrders(ctx, interfaces.OrderFilters{Search: "carlos"})
		if len(orders) != 1 || orders[0].ID != other.ID {
			t.Fatalf("expected search to match customer name")
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		orders, _ := uc.FetchOrders(ctx, interfaces.OrderFilters{Search: "nobody"})
		if len(orders) != 0 {
			t.Fatalf("expected no orders, got %d", len(orders))
		}
	})
}

func TestOrderUseCase_ComputeStats(t *testing.T) {
	ctx := context.Background()
	uc := NewOrderUseCase(nil, nil)

	a, _ := uc.CreateOrder(ctx, validOrderInput())
	_, _ = uc.UpdateOrderStatus(ctx, a.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusCompleted})

	input := validOrderInput()
	input.Total = 90
	b, _ := uc.CreateOrder(ctx, input)
	_, _ = uc.UpdateOrderStatus(ctx, b.ID, interfaces.OrderStatusUpdate{Status: entities.OrderStatusCancelled})

	input = validOrderInput()
	input.Total = 60
	_, _ = uc.CreateOrder(ctx, input)

	stats := uc.ComputeStats()
	if stats.Total != 3 {
		t.Fatalf("expected 3 orders, got %d", stats.Total)
	}
	if stats.Completed != 1 || stats.Cancelled != 1 || stats.Pending != 1 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	// Cancelled orders are excluded from revenue.
	if stats.TotalRevenue != 210 {
		t.Fatalf("expected revenue 210, got %.2f", stats.TotalRevenue)
	}
	if stats.AverageOrderValue != 210 {
		t.Fatalf("expected average 210, got %.2f", stats.AverageOrderValue)
	}

	t.Run("zero completed guards the average", func(t *testing.T) {
		empty := NewOrderUseCase(nil, nil)
		_, _ = empty.CreateOrder(ctx, validOrderInput())
		stats := empty.ComputeStats()
		if stats.AverageOrderValue != 0 {
			t.Fatalf("expected zero average with no completed orders, got %.2f", stats.AverageOrderValue)
		}
	})
}

func TestOrderUseCase_BackendAuthoritative(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch not-found maps from zero id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrderBackend(ctrl)
		backend.EXPECT().FetchOrder(gomock.Any(), "o-1").Return(entities.CustomOrder{}, nil)

		uc := NewOrderUseCase(backend, nil)
		if _, err := uc.FetchOrder(ctx, "o-1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("list unavailability maps to service error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backend := mock_interfaces.NewMockIOrderBackend(ctrl)
		backend.EXPECT().FetchOrders(gomock.Any(), gomock.Any()).Return(nil, errors.New("order service not yet implemented"))

		uc := NewOrderUseCase(backend, nil)
		if _, err := uc.FetchOrders(ctx, interfaces.OrderFilters{}); !errors.Is(err, ErrServiceUnavailable) {
			t.Fatalf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}
