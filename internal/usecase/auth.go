package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
	"github.com/vadimbarashkov/bookmarks/pkg/password"
)

type userRepository interface {
	Save(ctx context.Context, username, email string, passHash []byte) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	RetrieveByEmail(ctx context.Context, email string) (*entity.User, error)
	RetrieveByID(ctx context.Context, id int64) (*entity.User, error)
}

type passwordHasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

type tokenManager interface {
	IssueAccess(userID int64) (string, error)
	IssueRefresh(userID int64) (string, error)
	Verify(token string, typ entity.TokenType) (int64, error)
}

type AuthUseCase struct {
	log      *slog.Logger
	userRepo userRepository
	hasher   passwordHasher
	tokens   tokenManager
	validate *validator.Validate
}

func NewAuthUseCase(
	log *slog.Logger,
	userRepo userRepository,
	hasher passwordHasher,
	tokens tokenManager,
	validate *validator.Validate,
) *AuthUseCase {
	return &AuthUseCase{
		log:      log,
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		validate: validate,
	}
}

// Register validates the credentials in a fixed order, stopping at the first
// failure, and stores the new user with a hashed password.
func (uc *AuthUseCase) Register(ctx context.Context, username, email, pass string) (*entity.User, error) {
	const op = "usecase.AuthUseCase.Register"

	log := uc.log.With(slog.String("op", op))

	if err := uc.validateCredentials(username, email, pass); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := uc.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to check email: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailTaken)
	}

	exists, err = uc.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to check username: %w", op, err)
	}
	if exists {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUsernameTaken)
	}

	passHash, err := uc.hasher.Hash(pass)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := uc.userRepo.Save(ctx, username, email, passHash)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to save user: %w", op, err)
	}

	log.Info("user registered", slog.Int64("uid", user.ID))

	return user, nil
}

func (uc *AuthUseCase) validateCredentials(username, email, pass string) error {
	if utf8.RuneCountInString(pass) < entity.MinPasswordLength {
		return entity.ErrPasswordTooShort
	}

	if utf8.RuneCountInString(username) < entity.MinUsernameLength {
		return entity.ErrUsernameTooShort
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return entity.ErrUsernameNotAlphanumeric
		}
	}

	if err := uc.validate.Var(email, "required,email"); err != nil {
		return entity.ErrEmailInvalid
	}

	return nil
}

// Login checks the credentials and issues a token pair. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (uc *AuthUseCase) Login(ctx context.Context, email, pass string) (*entity.User, *entity.TokenPair, error) {
	const op = "usecase.AuthUseCase.Login"

	log := uc.log.With(slog.String("op", op))

	user, err := uc.userRepo.RetrieveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			log.Info("login attempt for unknown email")
			return nil, nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	if err := uc.hasher.Compare(user.PassHash, pass); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			log.Info("login attempt with wrong password", slog.Int64("uid", user.ID))
			return nil, nil, fmt.Errorf("%s: %w", op, entity.ErrInvalidCredentials)
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	access, err := uc.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, err := uc.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, &entity.TokenPair{Access: access, Refresh: refresh}, nil
}

func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*entity.User, error) {
	const op = "usecase.AuthUseCase.Me"

	user, err := uc.userRepo.RetrieveByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get user: %w", op, err)
	}

	return user, nil
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself stays valid until it expires.
func (uc *AuthUseCase) Refresh(_ context.Context, refreshToken string) (string, error) {
	const op = "usecase.AuthUseCase.Refresh"

	userID, err := uc.tokens.Verify(refreshToken, entity.TokenRefresh)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	access, err := uc.tokens.IssueAccess(userID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return access, nil
}
