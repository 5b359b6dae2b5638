package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrMissingSendGridAPIKey = errors.New("missing SENDGRID_API_KEY")

// SendGridMailer sends order lifecycle notifications. Mock mode (env
// MAILER_MOCK) logs instead of calling the network; either way failures are
// the caller's to log, never to propagate into the order lifecycle.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
	mockMode  bool
}

var _ interfaces.IMailer = (*SendGridMailer)(nil)

func NewSendGridMailer(apiKey string) (*SendGridMailer, error) {
	m := &SendGridMailer{
		fromName:  getenvDefault("MAIL_FROM_NAME", "PhotoStudio"),
		fromEmail: getenvDefault("MAIL_FROM_EMAIL", "orders@photostudio.example"),
	}

	if isMailerMockEnabled() {
		log.Printf("[mail][gateway] mock mode enabled")
		m.mockMode = true
		return m, nil
	}

	if apiKey == "" {
		log.Printf("[mail][gateway] missing SENDGRID_API_KEY")
		return nil, ErrMissingSendGridAPIKey
	}
	m.client = sendgrid.NewSendClient(apiKey)
	return m, nil
}

func (m *SendGridMailer) SendOrderReceived(ctx context.Context, order entities.CustomOrder) error {
	subject := fmt.Sprintf("Order %s received", order.OrderNumber)
	body := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Thank you for your custom order! We received order <strong>%s</strong> (%s) and will review your photos and requirements shortly.<br><br>Photos received: <strong>%d</strong>",
		order.CustomerName, order.OrderNumber, order.ServiceType, len(order.Photos),
	)
	return m.send(ctx, order.CustomerName, order.CustomerEmail, subject, body)
}

func (m *SendGridMailer) SendOrderStatusUpdate(ctx context.Context, order entities.CustomOrder, message string) error {
	subject := fmt.Sprintf("Order %s update: %s", order.OrderNumber, order.Status)
	body := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Your order <strong>%s</strong> is now <strong>%s</strong> (%d%% complete).<br><br>%s",
		order.CustomerName, order.OrderNumber, order.Status, order.Tracking.Progress, message,
	)
	return m.send(ctx, order.CustomerName, order.CustomerEmail, subject, body)
}

func (m *SendGridMailer) send(ctx context.Context, toName, toEmail, subject, htmlBody string) error {
	if m.mockMode {
		log.Printf("[mail][gateway] mock send to=%s subject=%q", toEmail, subject)
		return nil
	}
	if m.client == nil {
		return ErrMissingSendGridAPIKey
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, htmlBody, htmlBody)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("[mail][gateway] send failed to=%s err=%v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[mail][gateway] send rejected to=%s status=%d body=%s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	log.Printf("[mail][gateway] send success to=%s subject=%q", toEmail, subject)
	return nil
}

func isMailerMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MAILER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
