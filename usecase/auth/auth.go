package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lifesync/backend/domain"
	"github.com/lifesync/backend/internal/token"
	"github.com/lifesync/backend/repository"
)

const minPasswordLen = 6

type UseCase struct {
	users       repository.UserRepository
	tokens      *token.Service
	throttle    repository.LoginThrottle
	maxAttempts int64
	logger      *zap.Logger
}

func New(users repository.UserRepository, tokens *token.Service, throttle repository.LoginThrottle, maxAttempts int64, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &UseCase{
		users:       users,
		tokens:      tokens,
		throttle:    throttle,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Register creates a user with a bcrypt-hashed password. A reused
// email is a conflict and leaves the existing record untouched.
func (uc *UseCase) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || !validEmail(email) || len(password) < minPasswordLen {
		return nil, domain.ErrInvalidPayload
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a signed token. Failed
// attempts are counted per account; past the limit the account is
// temporarily locked out.
func (uc *UseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidPayload
	}

	if uc.attempts(ctx, email) >= uc.maxAttempts {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			uc.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		uc.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := uc.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	if uc.throttle != nil {
		if err := uc.throttle.Reset(ctx, email); err != nil {
			uc.logger.Warn("login throttle reset failed", zap.Error(err))
		}
	}
	return signed, user, nil
}

// The throttle is best effort: an unreachable counter store must not
// take logins down with it.
func (uc *UseCase) attempts(ctx context.Context, email string) int64 {
	if uc.throttle == nil {
		return 0
	}
	count, err := uc.throttle.Attempts(ctx, email)
	if err != nil {
		uc.logger.Warn("login throttle unavailable", zap.Error(err))
		return 0
	}
	return count
}

func (uc *UseCase) recordFailure(ctx context.Context, email string) {
	if uc.throttle == nil {
		return
	}
	if _, err := uc.throttle.Fail(ctx, email); err != nil {
		uc.logger.Warn("login throttle update failed", zap.Error(err))
	}
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
