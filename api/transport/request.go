package transport

// Request DTOs keep the Portuguese field names of the public API.

type RegisterRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type TaskRequest struct {
	Title string `json:"titulo"`
	Date  string `json:"data"`
	Time  string `json:"hora"`
}

type EventRequest struct {
	Title    string `json:"titulo"`
	Date     string `json:"data"`
	Time     string `json:"hora"`
	Location string `json:"local"`
}
