package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
)

type userDB struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *userDB) toEntity() *entity.User {
	return &entity.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		PassHash:  u.PasswordHash,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Save inserts a new user. Concurrent registrations racing on the same email
// or username are resolved by the table constraints.
func (r *UserRepository) Save(ctx context.Context, username, email string, passHash []byte) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.Save"
	const query = `INSERT INTO users(username, email, password_hash) VALUES ($1, $2, $3) RETURNING *`

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, username, email, string(passHash)); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case usersEmailKey:
				return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailTaken)
			case usersUsernameKey:
				return nil, fmt.Errorf("%s: %w", op, entity.ErrUsernameTaken)
			}
		}

		return nil, fmt.Errorf("%s: failed to insert into users table: %w", op, err)
	}

	return user.toEntity(), nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "adapter.repository.postgres.UserRepository.EmailExists"
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool

	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("%s: failed to query users table: %w", op, err)
	}

	return exists, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	const op = "adapter.repository.postgres.UserRepository.UsernameExists"
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool

	if err := r.db.GetContext(ctx, &exists, query, username); err != nil {
		return false, fmt.Errorf("%s: failed to query users table: %w", op, err)
	}

	return exists, nil
}

func (r *UserRepository) RetrieveByEmail(ctx context.Context, email string) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByEmail"
	const query = `SELECT * FROM users WHERE email = $1`

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from users table: %w", op, err)
	}

	return user.toEntity(), nil
}

func (r *UserRepository) RetrieveByID(ctx context.Context, id int64) (*entity.User, error) {
	const op = "adapter.repository.postgres.UserRepository.RetrieveByID"
	const query = `SELECT * FROM users WHERE id = $1`

	var user userDB

	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: failed to get row from users table: %w", op, err)
	}

	return user.toEntity(), nil
}
