package repository

import "context"

// LoginThrottle counts failed login attempts per account within a
// rolling window so the auth use case can back off brute forcing.
type LoginThrottle interface {
	// Attempts returns the current failed-attempt count.
	Attempts(ctx context.Context, email string) (int64, error)
	// Fail records a failed attempt and returns the new count.
	Fail(ctx context.Context, email string) (int64, error)
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}
