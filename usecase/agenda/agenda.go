package agenda

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lifesync/backend/domain"
	"github.com/lifesync/backend/repository"
)

// UseCase merges a user's active tasks and events into one ordered
// agenda. The merge is read-only and re-derived on every call; nothing
// is cached between requests.
type UseCase struct {
	tasks  repository.TaskRepository
	events repository.EventRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, events repository.EventRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		events: events,
		logger: logger,
	}
}

// ListOrdered returns every active task and event owned by ownerID,
// projected into the appointment read model and sorted by date; on a
// shared date events precede tasks, and within the same date and kind
// the store order is preserved. An owner with no items gets an empty
// slice, not an error. The owner id must come from the authenticated
// principal; that is the access-control boundary of the agenda.
//
// The two store queries are independent and run concurrently; a
// failure of either aborts the merge and propagates unchanged.
func (uc *UseCase) ListOrdered(ctx context.Context, ownerID string) ([]domain.Appointment, error) {
	if ownerID == "" {
		return nil, domain.ErrUnauthorized
	}

	var (
		tasks  []domain.Task
		events []domain.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = uc.tasks.ListActiveByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = uc.events.ListActiveByOwner(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	appointments := make([]domain.Appointment, 0, len(tasks)+len(events))
	for _, e := range events {
		appointments = append(appointments, domain.AppointmentFromEvent(e))
	}
	for _, t := range tasks {
		appointments = append(appointments, domain.AppointmentFromTask(t))
	}

	// Stable sort keeps insertion order for same-date, same-kind entries.
	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Before(appointments[j])
	})

	return appointments, nil
}
