package event

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/lifesync/backend/domain"
	"github.com/lifesync/backend/repository"
)

type UseCase struct {
	events repository.EventRepository
	logger *zap.Logger
}

func New(events repository.EventRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		events: events,
		logger: logger,
	}
}

// Create registers a new active event for the owner.
func (uc *UseCase) Create(ctx context.Context, ownerID, title, date, timeOfDay, location string) (*domain.Event, error) {
	title = strings.TrimSpace(title)
	location = strings.TrimSpace(location)
	if title == "" || location == "" || !domain.ValidDate(date) || !domain.ValidTime(timeOfDay) {
		return nil, domain.ErrInvalidPayload
	}

	event := &domain.Event{
		UserID:   ownerID,
		Title:    title,
		Date:     date,
		Time:     timeOfDay,
		Location: location,
		Active:   true,
	}
	return uc.events.Create(ctx, event)
}

// Get returns the owner's event regardless of its active flag.
func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.Event, error) {
	return uc.owned(ctx, ownerID, id)
}

// List returns the owner's active events.
func (uc *UseCase) List(ctx context.Context, ownerID string) ([]domain.Event, error) {
	return uc.events.ListActiveByOwner(ctx, ownerID)
}

// Edit replaces title, date, time and location of an existing event.
func (uc *UseCase) Edit(ctx context.Context, ownerID, id, title, date, timeOfDay, location string) error {
	title = strings.TrimSpace(title)
	location = strings.TrimSpace(location)
	if title == "" || location == "" || !domain.ValidDate(date) || !domain.ValidTime(timeOfDay) {
		return domain.ErrInvalidPayload
	}

	event, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	event.Title = title
	event.Date = date
	event.Time = timeOfDay
	event.Location = location
	return uc.events.Update(ctx, event)
}

// Deactivate soft-deletes the event.
func (uc *UseCase) Deactivate(ctx context.Context, ownerID, id string) error {
	event, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !event.Active {
		return nil
	}
	event.Deactivate()
	return uc.events.Update(ctx, event)
}

func (uc *UseCase) owned(ctx context.Context, ownerID, id string) (*domain.Event, error) {
	event, err := uc.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.UserID != ownerID {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}
