package agenda

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lifesync/backend/domain"
)

type fakeTaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
	err   error
}

func (s *fakeTaskStore) GetByID(_ context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (s *fakeTaskStore) ListActiveByOwner(_ context.Context, ownerID string) ([]domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if t.UserID == ownerID && t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTaskStore) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, *task)
	return task, nil
}

func (s *fakeTaskStore) Update(context.Context, *domain.Task) error {
	return nil
}

type fakeEventStore struct {
	mu     sync.RWMutex
	events []domain.Event
	err    error
}

func (s *fakeEventStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.events {
		if s.events[i].ID == id {
			e := s.events[i]
			return &e, nil
		}
	}
	return nil, domain.ErrEventNotFound
}

func (s *fakeEventStore) ListActiveByOwner(_ context.Context, ownerID string) ([]domain.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Event
	for _, e := range s.events {
		if e.UserID == ownerID && e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeEventStore) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
	return event, nil
}

func (s *fakeEventStore) Update(context.Context, *domain.Event) error {
	return nil
}

func task(id, owner, title, date, hour string) domain.Task {
	return domain.Task{ID: id, UserID: owner, Title: title, Date: date, Time: hour, Active: true}
}

func event(id, owner, title, date, hour string) domain.Event {
	return domain.Event{ID: id, UserID: owner, Title: title, Date: date, Time: hour, Location: "sala 1", Active: true}
}

func TestListOrdered_ScopedToOwner(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskStore{tasks: []domain.Task{
		task("t1", "u1", "Tarefa 1", "2025-01-10", "14:00"),
		task("t2", "u2", "Tarefa 2", "2025-01-10", "09:00"),
	}}
	events := &fakeEventStore{events: []domain.Event{
		event("e1", "u1", "Evento 1", "2025-01-11", "16:00"),
	}}

	uc := New(tasks, events, nil)

	got, err := uc.ListOrdered(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListOrdered returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}
	if got[0].Title != "Tarefa 1" || got[0].Kind != domain.KindTask {
		t.Fatalf("expected task first, got %+v", got[0])
	}
	if got[1].Title != "Evento 1" || got[1].Kind != domain.KindEvent {
		t.Fatalf("expected event second, got %+v", got[1])
	}
	for _, a := range got {
		if a.Title == "Tarefa 2" {
			t.Fatalf("foreign item leaked into the agenda: %+v", a)
		}
	}
}

func TestListOrdered_DateOrdering(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskStore{tasks: []domain.Task{
		task("t1", "u1", "depois", "2025-03-20", "08:00"),
		task("t2", "u1", "antes", "2025-03-18", "18:00"),
	}}
	events := &fakeEventStore{events: []domain.Event{
		event("e1", "u1", "meio", "2025-03-19", "12:00"),
	}}

	uc := New(tasks, events, nil)

	got, err := uc.ListOrdered(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListOrdered returned error: %v", err)
	}

	want := []string{"antes", "meio", "depois"}
	if len(got) != len(want) {
		t.Fatalf("expected %d appointments, got %d", len(want), len(got))
	}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, got[i].Title)
		}
	}
}

func TestListOrdered_EventsPrecedeTasksOnSameDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		eventTime string
	}{
		{"event earlier in the day", "09:00"},
		{"event even earlier", "08:00"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tasks := &fakeTaskStore{tasks: []domain.Task{
				task("t1", "u1", "tarefa do dia", "2024-12-15", "10:00"),
			}}
			events := &fakeEventStore{events: []domain.Event{
				event("e1", "u1", "evento do dia", "2024-12-15", tc.eventTime),
			}}

			uc := New(tasks, events, nil)

			got, err := uc.ListOrdered(context.Background(), "u1")
			if err != nil {
				t.Fatalf("ListOrdered returned error: %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected 2 appointments, got %d", len(got))
			}
			if got[0].Kind != domain.KindEvent {
				t.Fatalf("expected the event first on a shared date, got %+v", got[0])
			}
			if got[1].Kind != domain.KindTask {
				t.Fatalf("expected the task second on a shared date, got %+v", got[1])
			}
		})
	}
}

func TestListOrdered_SameDateSameKindKeepsStoreOrder(t *testing.T) {
	t.Parallel()

	tasks := &fakeTaskStore{tasks: []domain.Task{
		task("t1", "u1", "primeira", "2025-05-01", "15:00"),
		task("t2", "u1", "segunda", "2025-05-01", "09:00"),
	}}
	events := &fakeEventStore{}

	uc := New(tasks, events, nil)

	got, err := uc.ListOrdered(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListOrdered returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}
	if got[0].Title != "primeira" || got[1].Title != "segunda" {
		t.Fatalf("store order not preserved: %q then %q", got[0].Title, got[1].Title)
	}
}

func TestListOrdered_EmptyAgenda(t *testing.T) {
	t.Parallel()

	uc := New(&fakeTaskStore{}, &fakeEventStore{}, nil)

	got, err := uc.ListOrdered(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListOrdered returned error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected an empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no appointments, got %d", len(got))
	}
}

func TestListOrdered_SkipsInactiveItems(t *testing.T) {
	t.Parallel()

	done := task("t1", "u1", "apagada", "2025-01-10", "10:00")
	done.Active = false

	tasks := &fakeTaskStore{tasks: []domain.Task{
		done,
		task("t2", "u1", "visivel", "2025-01-10", "11:00"),
	}}
	events := &fakeEventStore{}

	uc := New(tasks, events, nil)

	got, err := uc.ListOrdered(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListOrdered returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "visivel" {
		t.Fatalf("expected only the active task, got %+v", got)
	}
}

func TestListOrdered_MissingOwner(t *testing.T) {
	t.Parallel()

	uc := New(&fakeTaskStore{}, &fakeEventStore{}, nil)

	_, err := uc.ListOrdered(context.Background(), "")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestListOrdered_StoreFailurePropagates(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection refused")

	uc := New(&fakeTaskStore{err: storeErr}, &fakeEventStore{}, nil)

	_, err := uc.ListOrdered(context.Background(), "u1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}

	uc = New(&fakeTaskStore{}, &fakeEventStore{err: storeErr}, nil)

	_, err = uc.ListOrdered(context.Background(), "u1")
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}
}
