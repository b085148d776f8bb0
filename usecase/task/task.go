package task

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifesync/backend/domain"
	"github.com/lifesync/backend/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// Create registers a new active, uncompleted task for the owner.
func (uc *UseCase) Create(ctx context.Context, ownerID, title, date, timeOfDay string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" || !domain.ValidDate(date) || !domain.ValidTime(timeOfDay) {
		return nil, domain.ErrInvalidPayload
	}

	task := &domain.Task{
		UserID: ownerID,
		Title:  title,
		Date:   date,
		Time:   timeOfDay,
		Active: true,
	}
	return uc.tasks.Create(ctx, task)
}

// Get returns the owner's task regardless of its active flag, so
// soft-deleted tasks remain reachable by id.
func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	return uc.owned(ctx, ownerID, id)
}

// List returns the owner's active tasks.
func (uc *UseCase) List(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return uc.tasks.ListActiveByOwner(ctx, ownerID)
}

// Edit replaces title, date and time of an existing task.
func (uc *UseCase) Edit(ctx context.Context, ownerID, id, title, date, timeOfDay string) error {
	title = strings.TrimSpace(title)
	if title == "" || !domain.ValidDate(date) || !domain.ValidTime(timeOfDay) {
		return domain.ErrInvalidPayload
	}

	task, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	task.Title = title
	task.Date = date
	task.Time = timeOfDay
	return uc.tasks.Update(ctx, task)
}

// Complete marks the task done. Repeating the call is a no-op.
func (uc *UseCase) Complete(ctx context.Context, ownerID, id string) error {
	task, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if task.Completed {
		return nil
	}
	task.Complete()
	return uc.tasks.Update(ctx, task)
}

// Deactivate soft-deletes the task: it disappears from listings and
// from the agenda but is never removed from storage.
func (uc *UseCase) Deactivate(ctx context.Context, ownerID, id string) error {
	task, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !task.Active {
		return nil
	}
	task.Deactivate()
	return uc.tasks.Update(ctx, task)
}

// A task owned by someone else is reported as not found rather than
// forbidden, so ids cannot be probed across accounts.
func (uc *UseCase) owned(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	task, err := uc.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
