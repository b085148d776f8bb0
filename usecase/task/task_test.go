package task

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/lifesync/backend/domain"
)

type fakeTaskStore struct {
	mu     sync.RWMutex
	nextID int
	tasks  map[string]domain.Task
	order  []string
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{nextID: 1, tasks: make(map[string]domain.Task)}
}

func (s *fakeTaskStore) GetByID(_ context.Context, id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &t, nil
}

func (s *fakeTaskStore) ListActiveByOwner(_ context.Context, ownerID string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Task
	for _, id := range s.order {
		t := s.tasks[id]
		if t.UserID == ownerID && t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTaskStore) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task.ID = fmt.Sprintf("task-%d", s.nextID)
	s.nextID++
	s.tasks[task.ID] = *task
	s.order = append(s.order, task.ID)
	return task, nil
}

func (s *fakeTaskStore) Update(_ context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	s.tasks[task.ID] = *task
	return nil
}

func mustCreate(t *testing.T, uc *UseCase, owner, title, date, hour string) *domain.Task {
	t.Helper()

	task, err := uc.Create(context.Background(), owner, title, date, hour)
	if err != nil {
		t.Fatalf("failed to prepare task: %v", err)
	}
	return task
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	uc := New(newFakeTaskStore(), nil)

	task, err := uc.Create(context.Background(), "u1", "  Estudar Go  ", "2025-02-01", "14:00")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if task.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if task.Title != "Estudar Go" {
		t.Fatalf("expected trimmed title, got %q", task.Title)
	}
	if !task.Active || task.Completed {
		t.Fatalf("expected a new task to be active and not completed: %+v", task)
	}
}

func TestCreate_InvalidPayload(t *testing.T) {
	t.Parallel()

	uc := New(newFakeTaskStore(), nil)

	cases := []struct {
		name              string
		title, date, hour string
	}{
		{"blank title", "   ", "2025-02-01", "14:00"},
		{"bad date", "Estudar", "01/02/2025", "14:00"},
		{"impossible date", "Estudar", "2025-02-30", "14:00"},
		{"bad time", "Estudar", "2025-02-01", "25:00"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := uc.Create(context.Background(), "u1", tc.title, tc.date, tc.hour)
			if !errors.Is(err, domain.ErrInvalidPayload) {
				t.Fatalf("expected ErrInvalidPayload, got %v", err)
			}
		})
	}
}

func TestEdit_ReplacesFields(t *testing.T) {
	t.Parallel()

	store := newFakeTaskStore()
	uc := New(store, nil)

	task := mustCreate(t, uc, "u1", "Estudar", "2025-02-01", "14:00")

	if err := uc.Edit(context.Background(), "u1", task.ID, "Revisar", "2025-02-02", "09:30"); err != nil {
		t.Fatalf("Edit returned error: %v", err)
	}

	got, err := uc.Get(context.Background(), "u1", task.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "Revisar" || got.Date != "2025-02-02" || got.Time != "09:30" {
		t.Fatalf("edit did not stick: %+v", got)
	}
}

func TestEdit_UnknownID(t *testing.T) {
	t.Parallel()

	uc := New(newFakeTaskStore(), nil)

	err := uc.Edit(context.Background(), "u1", "missing", "Revisar", "2025-02-02", "09:30")
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestComplete_Idempotent(t *testing.T) {
	t.Parallel()

	uc := New(newFakeTaskStore(), nil)

	task := mustCreate(t, uc, "u1", "Estudar", "2025-02-01", "14:00")

	if err := uc.Complete(context.Background(), "u1", task.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if err := uc.Complete(context.Background(), "u1", task.ID); err != nil {
		t.Fatalf("repeated Complete returned error: %v", err)
	}

	got, err := uc.Get(context.Background(), "u1", task.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !got.Completed {
		t.Fatalf("expected the task to stay completed")
	}
}

func TestDeactivate_HidesFromListingButNotFromLookup(t *testing.T) {
	t.Parallel()

	uc := New(newFakeTaskStore(), nil)

	task := mustCreate(t, uc, "u1", "Estudar", "2025-02-01", "14:00")

	if err := uc.Deactivate(context.Background(), "u1", task.ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}

	listed, err := uc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	for _, item := range listed {
		if item.ID == task.ID {
			t.Fatalf("deactivated task still listed: %+v", item)
		}
	}

	got, err := uc.Get(context.Background(), "u1", task.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Active {
		t.Fatalf("expected active=false after deactivation")
	}

	// Repeating the soft delete is a no-op.
	if err := uc.Deactivate(context.Background(), "u1", task.ID); err != nil {
		t.Fatalf("repeated Deactivate returned error: %v", err)
	}
}

func TestOwnership_ForeignTaskReportsNotFound(t *testing.T) {
	t.Parallel()

	uc := New(newFakeTaskStore(), nil)

	task := mustCreate(t, uc, "u1", "Estudar", "2025-02-01", "14:00")

	if _, err := uc.Get(context.Background(), "u2", task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign Get, got %v", err)
	}
	if err := uc.Edit(context.Background(), "u2", task.ID, "Roubar", "2025-02-02", "09:00"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign Edit, got %v", err)
	}
	if err := uc.Complete(context.Background(), "u2", task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign Complete, got %v", err)
	}
	if err := uc.Deactivate(context.Background(), "u2", task.ID); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound for foreign Deactivate, got %v", err)
	}
}
