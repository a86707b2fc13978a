package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
	"github.com/vadimbarashkov/bookmarks/pkg/response"
)

type bookmarkUseCase interface {
	Create(ctx context.Context, userID int64, url, body string) (*entity.Bookmark, error)
	List(ctx context.Context, userID int64, page, perPage int) ([]*entity.Bookmark, entity.Page, error)
	Get(ctx context.Context, userID, id int64) (*entity.Bookmark, error)
	Update(ctx context.Context, userID, id int64, url, body string) (*entity.Bookmark, error)
	Delete(ctx context.Context, userID, id int64) error
	Visit(ctx context.Context, shortURL string) (*entity.Bookmark, error)
	Stats(ctx context.Context, userID int64) ([]*entity.Bookmark, error)
}

type bookmarkHandler struct {
	useCase  bookmarkUseCase
	validate *validator.Validate
}

func newBookmarkHandler(useCase bookmarkUseCase, validate *validator.Validate) *bookmarkHandler {
	return &bookmarkHandler{
		useCase:  useCase,
		validate: validate,
	}
}

// queryInt reads an integer query parameter, falling back to def when it is
// absent or not a number.
func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}

	return v
}

// bookmarkID parses the {id} path parameter. Non-numeric ids cannot match
// any record and are reported as not found.
func bookmarkID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.NewError(entity.ErrBookmarkNotFound.Error()))
		return 0, false
	}

	return id, true
}

func (h *bookmarkHandler) create(w http.ResponseWriter, r *http.Request) {
	var req bookmarkRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	userID, _ := userIDFromContext(r.Context())

	bookmark, err := h.useCase.Create(r.Context(), userID, req.URL, req.Body)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toBookmarkResponse(bookmark))
}

func (h *bookmarkHandler) list(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", entity.DefaultPage)
	perPage := queryInt(r, "per_page", entity.DefaultPerPage)

	userID, _ := userIDFromContext(r.Context())

	bookmarks, meta, err := h.useCase.List(r.Context(), userID, page, perPage)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookmarkListResponse(bookmarks, meta))
}

func (h *bookmarkHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	userID, _ := userIDFromContext(r.Context())

	bookmark, err := h.useCase.Get(r.Context(), userID, id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookmarkResponse(bookmark))
}

func (h *bookmarkHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	userID, _ := userIDFromContext(r.Context())

	if _, err := h.useCase.Get(r.Context(), userID, id); err != nil {
		renderError(w, r, err)
		return
	}

	var req bookmarkRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	bookmark, err := h.useCase.Update(r.Context(), userID, id, req.URL, req.Body)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookmarkResponse(bookmark))
}

func (h *bookmarkHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := bookmarkID(w, r)
	if !ok {
		return
	}

	userID, _ := userIDFromContext(r.Context())

	if err := h.useCase.Delete(r.Context(), userID, id); err != nil {
		renderError(w, r, err)
		return
	}

	render.NoContent(w, r)
}

func (h *bookmarkHandler) stats(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	bookmarks, err := h.useCase.Stats(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookmarkStatsResponse(bookmarks))
}

func (h *bookmarkHandler) visit(w http.ResponseWriter, r *http.Request) {
	bookmark, err := h.useCase.Visit(r.Context(), chi.URLParam(r, "shortURL"))
	if err != nil {
		renderError(w, r, err)
		return
	}

	http.Redirect(w, r, bookmark.URL, http.StatusFound)
}
