package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarks/internal/entity"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short url")

type bookmarkRepository interface {
	Save(ctx context.Context, userID int64, url, body, shortURL string) (*entity.Bookmark, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Bookmark, int, error)
	ListAllByUser(ctx context.Context, userID int64) ([]*entity.Bookmark, error)
	RetrieveByID(ctx context.Context, userID, id int64) (*entity.Bookmark, error)
	Update(ctx context.Context, userID, id int64, url, body string) (*entity.Bookmark, error)
	Remove(ctx context.Context, userID, id int64) error
	RetrieveAndUpdateVisits(ctx context.Context, shortURL string) (*entity.Bookmark, error)
}

type BookmarkUseCase struct {
	log            *slog.Logger
	shortURLLength int
	bookmarkRepo   bookmarkRepository
	validate       *validator.Validate
}

func NewBookmarkUseCase(
	log *slog.Logger,
	shortURLLength int,
	bookmarkRepo bookmarkRepository,
	validate *validator.Validate,
) *BookmarkUseCase {
	return &BookmarkUseCase{
		log:            log,
		shortURLLength: shortURLLength,
		bookmarkRepo:   bookmarkRepo,
		validate:       validate,
	}
}

// Create stores a bookmark for the user under a freshly generated short url.
// A short url collision is retried with a longer code.
func (uc *BookmarkUseCase) Create(ctx context.Context, userID int64, url, body string) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.Create"
	const maxRetries = 5

	if err := uc.validateURL(url); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	length := uc.shortURLLength

	for i := 0; i < maxRetries; i++ {
		shortURL, err := gonanoid.New(length)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short url: %w", op, err)
		}

		bookmark, err := uc.bookmarkRepo.Save(ctx, userID, url, body, shortURL)
		if err != nil {
			if errors.Is(err, entity.ErrShortURLExists) {
				uc.log.Debug("short url collision",
					slog.String("op", op),
					slog.String("short_url", shortURL),
				)

				length++
				continue
			}

			return nil, fmt.Errorf("%s: failed to save bookmark: %w", op, err)
		}

		return bookmark, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// List returns one page of the user's bookmarks in insertion order. Page 1
// is always served, even when empty; any other page without items, and any
// page below 1, is reported as not found.
func (uc *BookmarkUseCase) List(ctx context.Context, userID int64, page, perPage int) ([]*entity.Bookmark, entity.Page, error) {
	const op = "usecase.BookmarkUseCase.List"

	if perPage < 1 || perPage > entity.MaxPerPage {
		return nil, entity.Page{}, fmt.Errorf("%s: %w", op, entity.ErrInvalidPagination)
	}

	// Beyond math.MaxInt/perPage the offset overflows int.
	if page < 1 || page-1 > math.MaxInt/perPage {
		return nil, entity.Page{}, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}

	window := entity.Page{Page: page, PerPage: perPage}

	bookmarks, total, err := uc.bookmarkRepo.ListByUser(ctx, userID, perPage, window.Offset())
	if err != nil {
		return nil, entity.Page{}, fmt.Errorf("%s: failed to list bookmarks: %w", op, err)
	}

	if len(bookmarks) == 0 && page > 1 {
		return nil, entity.Page{}, fmt.Errorf("%s: %w", op, entity.ErrBookmarkNotFound)
	}

	return bookmarks, entity.NewPage(page, perPage, total), nil
}

func (uc *BookmarkUseCase) Get(ctx context.Context, userID, id int64) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.Get"

	bookmark, err := uc.bookmarkRepo.RetrieveByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get bookmark: %w", op, err)
	}

	return bookmark, nil
}

// Update replaces url and body of an owned bookmark. Ownership is resolved
// before the new url is validated. Keeping the bookmark's own url is not a
// conflict.
func (uc *BookmarkUseCase) Update(ctx context.Context, userID, id int64, url, body string) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.Update"

	if _, err := uc.bookmarkRepo.RetrieveByID(ctx, userID, id); err != nil {
		return nil, fmt.Errorf("%s: failed to get bookmark: %w", op, err)
	}

	if err := uc.validateURL(url); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookmark, err := uc.bookmarkRepo.Update(ctx, userID, id, url, body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update bookmark: %w", op, err)
	}

	return bookmark, nil
}

func (uc *BookmarkUseCase) Delete(ctx context.Context, userID, id int64) error {
	const op = "usecase.BookmarkUseCase.Delete"

	if err := uc.bookmarkRepo.Remove(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: failed to delete bookmark: %w", op, err)
	}

	return nil
}

// Visit resolves a short url and counts the visit.
func (uc *BookmarkUseCase) Visit(ctx context.Context, shortURL string) (*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.Visit"

	bookmark, err := uc.bookmarkRepo.RetrieveAndUpdateVisits(ctx, shortURL)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve short url: %w", op, err)
	}

	return bookmark, nil
}

func (uc *BookmarkUseCase) Stats(ctx context.Context, userID int64) ([]*entity.Bookmark, error) {
	const op = "usecase.BookmarkUseCase.Stats"

	bookmarks, err := uc.bookmarkRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list bookmarks: %w", op, err)
	}

	return bookmarks, nil
}

// validateURL accepts absolute http and https urls only.
func (uc *BookmarkUseCase) validateURL(url string) error {
	if err := uc.validate.Var(url, "required,http_url"); err != nil {
		return entity.ErrURLInvalid
	}

	return nil
}
