package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/lifesync/backend/domain"
	"github.com/lifesync/backend/repository"
)

// UseCase exposes the authenticated user's own record. Accounts are
// immutable after registration in this service, so the profile is
// read-only.
type UseCase struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func New(users repository.UserRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		logger: logger,
	}
}

func (uc *UseCase) Get(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}
