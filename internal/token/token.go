package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/lifesync/backend/domain"
)

// Claims carried by an issued credential. Validity is a pure function
// of these signed contents and the current time; nothing is kept on
// the server side.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and resolves HS256-signed bearer tokens.
type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// New builds a token service. The secret is read once from
// configuration and treated as immutable afterwards.
func New(secret, issuer string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// Issue signs a credential for the user. Tokens issued at different
// times differ but each validates independently until its expiry.
func (s *Service) Issue(user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", domain.ErrInvalidPayload
	}

	now := time.Now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Resolve verifies the signature and expiry of a presented credential
// and returns the subject user id. Failures keep their classification:
// expired, tampered and malformed tokens surface as distinct errors.
func (s *Service) Resolve(tokenString string) (string, error) {
	if tokenString == "" {
		return "", domain.ErrTokenMissing
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", classify(err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrTokenMalformed
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return "", domain.ErrTokenSignature
	}
	return claims.Subject, nil
}

func classify(err error) error {
	var vErr *jwt.ValidationError
	if !errors.As(err, &vErr) {
		return domain.WrapError(domain.ErrCodeUnauthorized, "token invalid", err)
	}
	switch {
	case vErr.Errors&jwt.ValidationErrorMalformed != 0:
		return domain.ErrTokenMalformed
	case vErr.Errors&jwt.ValidationErrorExpired != 0:
		return domain.ErrTokenExpired
	case vErr.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
		return domain.ErrTokenSignature
	default:
		return domain.WrapError(domain.ErrCodeUnauthorized, "token invalid", err)
	}
}
