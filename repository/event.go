package repository

import (
	"context"

	"github.com/lifesync/backend/domain"
)

// EventRepository persists events with the same soft-delete contract
// as TaskRepository.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	ListActiveByOwner(ctx context.Context, ownerID string) ([]domain.Event, error)
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
}
