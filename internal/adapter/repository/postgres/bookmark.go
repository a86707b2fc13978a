package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/bookmarks/internal/entity"

	pg "github.com/vadimbarashkov/bookmarks/pkg/postgres"
)

type bookmarkDB struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	URL       string    `db:"url"`
	Body      string    `db:"body"`
	ShortURL  string    `db:"short_url"`
	Visits    int64     `db:"visits"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (b *bookmarkDB) toEntity() *entity.Bookmark {
	return &entity.Bookmark{
		ID:        b.ID,
		UserID:    b.UserID,
		URL:       b.URL,
		Body:      b.Body,
		ShortURL:  b.ShortURL,
		Visits:    b.Visits,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBookmarkEntities(rows []bookmarkDB) []*entity.Bookmark {
	bookmarks := make([]*entity.Bookmark, 0, len(rows))
	for i := range rows {
		bookmarks = append(bookmarks, rows[i].toEntity())
	}

	return bookmarks
}

// bookmarkConflict maps a unique violation on the bookmarks table to its entity error.
func bookmarkConflict(err error) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return nil
	}

	switch constraint {
	case bookmarksURLKey:
		return entity.ErrURLExists
	case bookmarksShortURLKey:
		return entity.ErrShortURLExists
	default:
		return nil
	}
}

type BookmarkRepository struct {
	db *sqlx.DB
}

func NewBookmarkRepository(db *sqlx.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Save(ctx context.Context, userID int64, url, body, shortURL string) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.Save"
	const query = `INSERT INTO bookmarks(user_id, url, body, short_url) VALUES ($1, $2, $3, $4) RETURNING *`

	var bookmark bookmarkDB

	if err := r.db.GetContext(ctx, &bookmark, query, userID, url, body, shortURL); err != nil {
		if conflict := bookmarkConflict(err); conflict != nil {
			return nil, fmt.Errorf("%s: %w", op, conflict)
		}

		return nil, fmt.Errorf("%s: failed to insert into bookmarks table: %w", op, err)
	}

	return bookmark.toEntity(), nil
}

// ListByUser returns one window of the user's bookmarks in insertion order
// together with the total number of bookmarks the user owns.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Bookmark, int, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.ListByUser"
	const countQuery = `SELECT COUNT(*) FROM bookmarks WHERE user_id = $1`
	const listQuery = `SELECT * FROM bookmarks WHERE user_id = $1 ORDER BY id LIMIT $2 OFFSET $3`

	var total int

	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("%s: failed to count bookmarks table rows: %w", op, err)
	}

	var rows []bookmarkDB

	if err := r.db.SelectContext(ctx, &rows, listQuery, userID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("%s: failed to select from bookmarks table: %w", op, err)
	}

	return toBookmarkEntities(rows), total, nil
}

// ListAllByUser returns every bookmark the user owns in insertion order.
func (r *BookmarkRepository) ListAllByUser(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.ListAllByUser"
	const query = `SELECT * FROM bookmarks WHERE user_id = $1 ORDER BY id`

	var rows []bookmarkDB

	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("%s: failed to select from bookmarks table: %w", op, err)
	}

	return toBookmarkEntities(rows), nil
}

func (r *BookmarkRepository) RetrieveByID(ctx context.Context, userID, id int64) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.RetrieveByID"
	const query = `SELECT * FROM bookmarks WHERE id = $1 AND user_id = $2`

	var bookmark bookmarkDB

	if err := r.db.GetContext(ctx, &bookmark, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from bookmarks table: %w", op, err)
	}

	return bookmark.toEntity(), nil
}

// Update locks the owned bookmark, rejects a url held by any other bookmark,
// and writes the new url and body in a single transaction.
func (r *BookmarkRepository) Update(ctx context.Context, userID, id int64, url, body string) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.Update"
	const lockQuery = `SELECT * FROM bookmarks WHERE id = $1 AND user_id = $2 FOR UPDATE`
	const conflictQuery = `SELECT EXISTS(SELECT 1 FROM bookmarks WHERE url = $1 AND id <> $2)`
	const updateQuery = `UPDATE bookmarks SET url = $1, body = $2, updated_at = NOW() WHERE id = $3 RETURNING *`

	var bookmark bookmarkDB

	err := pg.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &bookmark, lockQuery, id, userID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return entity.ErrBookmarkNotFound
			}

			return fmt.Errorf("failed to lock bookmarks table row: %w", err)
		}

		var taken bool

		if err := tx.GetContext(ctx, &taken, conflictQuery, url, id); err != nil {
			return fmt.Errorf("failed to query bookmarks table: %w", err)
		}
		if taken {
			return entity.ErrURLExists
		}

		if err := tx.GetContext(ctx, &bookmark, updateQuery, url, body, id); err != nil {
			if conflict := bookmarkConflict(err); conflict != nil {
				return conflict
			}

			return fmt.Errorf("failed to update bookmarks table row: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookmark.toEntity(), nil
}

func (r *BookmarkRepository) Remove(ctx context.Context, userID, id int64) error {
	const op = "adapter.repository.postgres.BookmarkRepository.Remove"
	const query = `DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("%s: failed to delete from bookmarks table: %w", op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get number of affected rows: %w", op, err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}

	return nil
}

// RetrieveAndUpdateVisits increments the visit counter of the bookmark with the short url and returns it.
func (r *BookmarkRepository) RetrieveAndUpdateVisits(ctx context.Context, shortURL string) (*entity.Bookmark, error) {
	const op = "adapter.repository.postgres.BookmarkRepository.RetrieveAndUpdateVisits"
	const query = `UPDATE bookmarks SET visits = visits + 1 WHERE short_url = $1 RETURNING *`

	var bookmark bookmarkDB

	if err := r.db.GetContext(ctx, &bookmark, query, shortURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get and update bookmarks table row: %w", op, err)
	}

	return bookmark.toEntity(), nil
}
