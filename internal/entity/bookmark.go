package entity

import (
	"errors"
	"time"
)

var (
	// ErrURLInvalid is returned when a bookmark url is not a structurally valid URL.
	ErrURLInvalid = errors.New("enter a valid url")
	// ErrURLExists is returned when a bookmark with the url already exists for any user.
	ErrURLExists = errors.New("url already exists")
	// ErrShortURLExists is returned when a generated short url collides with an existing one.
	ErrShortURLExists = errors.New("short url exists")
	// ErrBookmarkNotFound is returned when a bookmark does not exist or belongs to another user.
	ErrBookmarkNotFound = errors.New("record not found")
	// ErrInvalidPagination is returned when per_page is out of range.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
)

// Bookmark represents a saved URL owned by a single user.
type Bookmark struct {
	ID        int64     // ID is the unique identifier of the bookmark in the database.
	UserID    int64     // UserID is the owner of the bookmark.
	URL       string    // URL is the bookmarked address, unique across all users.
	Body      string    // Body is the free-text note attached to the bookmark.
	ShortURL  string    // ShortURL is the generated code that redirects to URL.
	Visits    int64     // Visits is the number of times ShortURL has been followed.
	CreatedAt time.Time // CreatedAt is the timestamp when the bookmark was created.
	UpdatedAt time.Time // UpdatedAt is the timestamp when the bookmark was last updated.
}
