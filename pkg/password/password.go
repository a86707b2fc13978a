// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a password does not match the stored hash.
var ErrMismatch = errors.New("password mismatch")

// Hasher hashes passwords with a fixed bcrypt cost.
type Hasher struct {
	cost int
}

// New creates a Hasher. A cost outside bcrypt's allowed range falls back to bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Hasher{cost: cost}
}

// Hash returns a salted one-way hash of the password.
func (h *Hasher) Hash(password string) ([]byte, error) {
	const op = "password.Hasher.Hash"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to hash password: %w", op, err)
	}

	return hash, nil
}

// Compare checks the password against the hash in constant time.
func (h *Hasher) Compare(hash []byte, password string) error {
	const op = "password.Hasher.Compare"

	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("%s: %w", op, ErrMismatch)
		}

		return fmt.Errorf("%s: failed to compare password: %w", op, err)
	}

	return nil
}
