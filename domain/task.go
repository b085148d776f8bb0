package domain

import "time"

// Task represents a user-owned to-do item with a deadline.
// Deactivation is a soft delete: inactive tasks disappear from listings
// and from the agenda but stay reachable by id.
type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"titulo"`
	Date      string    `json:"data"`
	Time      string    `json:"hora"`
	Completed bool      `json:"concluida"`
	Active    bool      `json:"ativa"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Complete marks the task as done. The transition is one-way and
// idempotent; completing an already completed task is a no-op.
func (t *Task) Complete() {
	if t == nil {
		return
	}
	t.Completed = true
}

// Deactivate hides the task from listings without deleting it.
func (t *Task) Deactivate() {
	if t == nil {
		return
	}
	t.Active = false
}
