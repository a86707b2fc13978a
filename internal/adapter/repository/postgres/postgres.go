// Package postgres implements the user and bookmark repositories on top of
// sqlx and the pgx driver. Uniqueness is enforced by table constraints and
// unique violations are translated into entity errors by constraint name.
package postgres

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	usersEmailKey        = "users_email_key"
	usersUsernameKey     = "users_username_key"
	bookmarksURLKey      = "bookmarks_url_key"
	bookmarksShortURLKey = "bookmarks_short_url_key"
)

// uniqueViolation reports whether err is a unique constraint violation and, if so, which constraint failed.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}

	return "", false
}
