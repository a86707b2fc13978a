// Package token issues and verifies the signed access and refresh tokens
// handed out by the auth endpoints.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
)

// claims is the payload of both token types. Subject carries the user id.
type claims struct {
	jwt.RegisteredClaims
	Type entity.TokenType `json:"type"`
}

// Manager signs tokens with an HMAC secret.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// IssueAccess returns a short-lived token authorizing API calls for the user.
func (m *Manager) IssueAccess(userID int64) (string, error) {
	return m.issue(userID, entity.TokenAccess, m.accessTTL)
}

// IssueRefresh returns a long-lived token that can only be exchanged for access tokens.
func (m *Manager) IssueRefresh(userID int64) (string, error) {
	return m.issue(userID, entity.TokenRefresh, m.refreshTTL)
}

func (m *Manager) issue(userID int64, typ entity.TokenType, ttl time.Duration) (string, error) {
	const op = "adapter.token.Manager.issue"

	now := m.now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Type: typ,
	})

	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: failed to sign %s token: %w", op, typ, err)
	}

	return signed, nil
}

// Verify checks the signature, expiry and type of the token and returns the user id it was issued for.
func (m *Manager) Verify(tokenString string, typ entity.TokenType) (int64, error) {
	const op = "adapter.token.Manager.Verify"

	var c claims

	_, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%s: token expired: %w", op, entity.ErrInvalidToken)
		}

		return 0, fmt.Errorf("%s: %w: %w", op, entity.ErrInvalidToken, err)
	}

	if c.Type != typ {
		return 0, fmt.Errorf("%s: expected %s token, got %q: %w", op, typ, c.Type, entity.ErrInvalidToken)
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: malformed subject: %w", op, entity.ErrInvalidToken)
	}

	return userID, nil
}
