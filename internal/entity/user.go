// Package entity defines the entities and errors used in the application.
// It includes the User and Bookmark records, the token types issued by the
// auth layer, pagination metadata, and the sentinel errors shared by every
// layer of the service.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrPasswordTooShort is returned when a registration password has fewer than MinPasswordLength characters.
	ErrPasswordTooShort = errors.New("password is too short")
	// ErrUsernameTooShort is returned when a registration username has fewer than MinUsernameLength characters.
	ErrUsernameTooShort = errors.New("username is too short")
	// ErrUsernameNotAlphanumeric is returned when a username contains anything but letters and digits.
	ErrUsernameNotAlphanumeric = errors.New("username should be alphanumeric and not contain spaces")
	// ErrEmailInvalid is returned when an email address fails structural validation.
	ErrEmailInvalid = errors.New("email is not valid")
	// ErrEmailTaken is returned when another user is already registered with the email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUsernameTaken is returned when another user is already registered with the username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned for both unknown emails and wrong passwords.
	ErrInvalidCredentials = errors.New("wrong credential!")
)

const (
	MinPasswordLength = 6
	MinUsernameLength = 3
)

// User represents a registered account.
type User struct {
	ID        int64     // ID is the unique identifier of the user in the database.
	Username  string    // Username is the globally unique login name.
	Email     string    // Email is the globally unique email address.
	PassHash  []byte    // PassHash is the salted one-way hash of the password.
	CreatedAt time.Time // CreatedAt is the timestamp when the user registered.
	UpdatedAt time.Time // UpdatedAt is the timestamp when the user was last updated.
}
