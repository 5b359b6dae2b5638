package interfaces

import (
	"context"

	"photostudio/internal/domain/entities"
)

// IIdentityGateway abstracts the external identity provider.
//
// "Service unavailable" is a normal outcome for the session manager, not a
// crash: the caller turns any error into a failed session transition.
type IIdentityGateway interface {
	Login(ctx context.Context, email, password string) (entities.User, error)
	Register(ctx context.Context, data entities.RegisterData) (entities.User, error)
}
