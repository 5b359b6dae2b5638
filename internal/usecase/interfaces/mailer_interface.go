package interfaces

import (
	"context"

	"photostudio/internal/domain/entities"
)

// IMailer sends customer-facing order notifications. Failures are logged and
// never block the order lifecycle.
type IMailer interface {
	SendOrderReceived(ctx context.Context, order entities.CustomOrder) error
	SendOrderStatusUpdate(ctx context.Context, order entities.CustomOrder, message string) error
}
