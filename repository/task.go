package repository

import (
	"context"

	"github.com/lifesync/backend/domain"
)

// TaskRepository persists tasks. GetByID deliberately ignores the
// active flag so soft-deleted tasks stay reachable by id, while
// ListActiveByOwner powers listings and the agenda.
type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListActiveByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
}
