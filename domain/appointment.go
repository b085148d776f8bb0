package domain

// Appointment kinds as they appear on the wire.
const (
	KindTask  = "tarefa"
	KindEvent = "evento"
)

// Appointment is the merged agenda read model covering both tasks and
// events. It is projected per request and never persisted or cached.
type Appointment struct {
	ID    string `json:"id"`
	Title string `json:"titulo"`
	Date  string `json:"data"`
	Time  string `json:"hora"`
	Kind  string `json:"tipo"`
}

// AppointmentFromTask projects a task into the agenda read model.
func AppointmentFromTask(t Task) Appointment {
	return Appointment{
		ID:    t.ID,
		Title: t.Title,
		Date:  t.Date,
		Time:  t.Time,
		Kind:  KindTask,
	}
}

// AppointmentFromEvent projects an event into the agenda read model.
func AppointmentFromEvent(e Event) Appointment {
	return Appointment{
		ID:    e.ID,
		Title: e.Title,
		Date:  e.Date,
		Time:  e.Time,
		Kind:  KindEvent,
	}
}

// KindRank orders appointment kinds on a shared date: events come
// before tasks regardless of time-of-day.
func (a Appointment) KindRank() int {
	if a.Kind == KindEvent {
		return 0
	}
	return 1
}

// Before reports whether a sorts ahead of b in the agenda. The key is
// (date, kind rank); time-of-day is displayed but never compared, and
// ties beyond the key keep their original order via a stable sort.
func (a Appointment) Before(b Appointment) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.KindRank() < b.KindRank()
}
