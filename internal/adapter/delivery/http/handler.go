package http

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
	"github.com/vadimbarashkov/bookmarks/pkg/response"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

// newValidator reports struct fields under their json names.
func newValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// decodeRequest decodes and shape-validates the JSON body into v. On failure
// the error response is already written and false is returned.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		render.Status(r, http.StatusBadRequest)

		if errors.Is(err, io.EOF) {
			render.JSON(w, r, response.EmptyRequestBody)
			return false
		}

		render.JSON(w, r, response.InvalidRequestBody)
		return false
	}

	if err := validate.Struct(v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Validation(err))
		return false
	}

	return true
}

var (
	badRequestErrs = []error{
		entity.ErrPasswordTooShort,
		entity.ErrUsernameTooShort,
		entity.ErrUsernameNotAlphanumeric,
		entity.ErrEmailInvalid,
		entity.ErrURLInvalid,
		entity.ErrInvalidPagination,
	}
	unauthorizedErrs = []error{
		entity.ErrInvalidCredentials,
		entity.ErrInvalidToken,
	}
	notFoundErrs = []error{
		entity.ErrBookmarkNotFound,
		entity.ErrUserNotFound,
	}
	conflictErrs = []error{
		entity.ErrEmailTaken,
		entity.ErrUsernameTaken,
		entity.ErrURLExists,
	}
)

func matchErr(err error, targets []error) (error, bool) {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target, true
		}
	}

	return nil, false
}

// renderError answers with the status of the error kind and the sentinel's
// message. Anything unclassified is logged and hidden behind a 500.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	kinds := []struct {
		status  int
		targets []error
	}{
		{http.StatusBadRequest, badRequestErrs},
		{http.StatusUnauthorized, unauthorizedErrs},
		{http.StatusNotFound, notFoundErrs},
		{http.StatusConflict, conflictErrs},
	}

	for _, kind := range kinds {
		if target, ok := matchErr(err, kind.targets); ok {
			resp := response.NewError(target.Error())
			if errors.Is(target, entity.ErrInvalidToken) {
				resp = response.InvalidToken
			}

			render.Status(r, kind.status)
			render.JSON(w, r, resp)
			return
		}
	}

	httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.ServerError)
}
