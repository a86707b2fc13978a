package entity

import "errors"

// ErrInvalidToken is returned when a token has a bad signature, is expired, or has the wrong type.
var ErrInvalidToken = errors.New("invalid token")

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// TokenPair is issued on a successful login.
type TokenPair struct {
	Access  string
	Refresh string
}
