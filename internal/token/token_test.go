package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lifesync/backend/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    "8d0f38aa-4a33-4f58-9f1e-1d4f0a2b6c7d",
		Name:  "Ana",
		Email: "ana@example.com",
		Role:  domain.RoleUser,
	}
}

func TestIssueResolve_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := New("test-secret", "lifesync", time.Hour)
	user := testUser()

	signed, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := svc.Resolve(signed)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if subject != user.ID {
		t.Fatalf("expected subject %q, got %q", user.ID, subject)
	}
}

func TestResolve_Expired(t *testing.T) {
	t.Parallel()

	svc := &Service{secret: []byte("test-secret"), issuer: "lifesync", ttl: -time.Minute}

	signed, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = svc.Resolve(signed)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestResolve_TamperedToken(t *testing.T) {
	t.Parallel()

	svc := New("test-secret", "lifesync", time.Hour)

	signed, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	dot := strings.LastIndexByte(signed, '.')
	raw := []byte(signed)
	if raw[dot+1] == 'A' {
		raw[dot+1] = 'B'
	} else {
		raw[dot+1] = 'A'
	}

	_, err = svc.Resolve(string(raw))
	if !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestResolve_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := New("secret-a", "lifesync", time.Hour)
	resolver := New("secret-b", "lifesync", time.Hour)

	signed, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = resolver.Resolve(signed)
	if !errors.Is(err, domain.ErrTokenSignature) {
		t.Fatalf("expected ErrTokenSignature, got %v", err)
	}
}

func TestResolve_Malformed(t *testing.T) {
	t.Parallel()

	svc := New("test-secret", "lifesync", time.Hour)

	_, err := svc.Resolve("not-a-token")
	if !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestResolve_Missing(t *testing.T) {
	t.Parallel()

	svc := New("test-secret", "lifesync", time.Hour)

	_, err := svc.Resolve("")
	if !errors.Is(err, domain.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestIssue_RejectsEmptyUser(t *testing.T) {
	t.Parallel()

	svc := New("test-secret", "lifesync", time.Hour)

	if _, err := svc.Issue(nil); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for nil user, got %v", err)
	}
	if _, err := svc.Issue(&domain.User{}); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for empty id, got %v", err)
	}
}
