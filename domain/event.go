package domain

import "time"

// Event represents a user-owned occurrence at a date, time and place.
// Unlike a Task it has no completion state.
type Event struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"titulo"`
	Date      string    `json:"data"`
	Time      string    `json:"hora"`
	Location  string    `json:"local"`
	Active    bool      `json:"ativo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Deactivate hides the event from listings without deleting it.
func (e *Event) Deactivate() {
	if e == nil {
		return
	}
	e.Active = false
}
