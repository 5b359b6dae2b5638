package identity

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"photostudio/internal/domain/entities"
	"photostudio/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ErrIdentityUnavailable is the placeholder outcome of the identity
// collaborator. The session manager turns it into a failed transition; it is
// never retried automatically.
var ErrIdentityUnavailable = errors.New("authentication service not yet implemented")

// UnimplementedIdentityGateway mirrors the reference storefront, which ships
// without a real identity backend: every call reports the service as not yet
// implemented.
type UnimplementedIdentityGateway struct{}

var _ interfaces.IIdentityGateway = (*UnimplementedIdentityGateway)(nil)

func NewUnimplementedIdentityGateway() *UnimplementedIdentityGateway {
	return &UnimplementedIdentityGateway{}
}

func (g *UnimplementedIdentityGateway) Login(_ context.Context, email, _ string) (entities.User, error) {
	log.Printf("[identity][gateway] login unavailable email=%s", email)
	return entities.User{}, ErrIdentityUnavailable
}

func (g *UnimplementedIdentityGateway) Register(_ context.Context, data entities.RegisterData) (entities.User, error) {
	log.Printf("[identity][gateway] register unavailable email=%s", data.Email)
	return entities.User{}, ErrIdentityUnavailable
}

// MockIdentityGateway accepts any non-empty credentials. Enabled through
// IDENTITY_GATEWAY_MOCK for local development and end-to-end session tests.
type MockIdentityGateway struct{}

var _ interfaces.IIdentityGateway = (*MockIdentityGateway)(nil)

func NewMockIdentityGateway() *MockIdentityGateway {
	return &MockIdentityGateway{}
}

func (g *MockIdentityGateway) Login(_ context.Context, email, password string) (entities.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return entities.User{}, errors.New("email and password are required")
	}
	log.Printf("[identity][gateway] mock login success email=%s", email)
	return entities.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: "Test",
		LastName:  "Customer",
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (g *MockIdentityGateway) Register(_ context.Context, data entities.RegisterData) (entities.User, error) {
	email := strings.TrimSpace(data.Email)
	if email == "" || data.Password == "" {
		return entities.User{}, errors.New("email and password are required")
	}
	log.Printf("[identity][gateway] mock register success email=%s", email)
	return entities.User{
		ID:        uuid.NewString(),
		Email:     email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewIdentityGatewayFromEnv picks the mock gateway when
// IDENTITY_GATEWAY_MOCK is set, otherwise the placeholder.
func NewIdentityGatewayFromEnv() interfaces.IIdentityGateway {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("IDENTITY_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		log.Printf("[identity][gateway] mock mode enabled")
		return NewMockIdentityGateway()
	}
	return NewUnimplementedIdentityGateway()
}
