package usecase

import (
	"context"

	"admindash/internal/domain/entity"
)

// IdentityProvider lists accounts from the external identity service.
type IdentityProvider interface {
	ListUsers(ctx context.Context, max int) ([]*entity.AuthUser, error)
}
