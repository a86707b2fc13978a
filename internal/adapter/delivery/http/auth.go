package http

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
	"github.com/vadimbarashkov/bookmarks/pkg/response"
)

type authUseCase interface {
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	Login(ctx context.Context, email, password string) (*entity.User, *entity.TokenPair, error)
	Me(ctx context.Context, userID int64) (*entity.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type authHandler struct {
	useCase  authUseCase
	validate *validator.Validate
}

func newAuthHandler(useCase authUseCase, validate *validator.Validate) *authHandler {
	return &authHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *authHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	user, err := h.useCase.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, registerResponse{
		Message: "user created",
		User:    toUserResponse(user),
	})
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	user, pair, err := h.useCase.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, loginResponse{
		User: loginUser{
			Refresh:  pair.Refresh,
			Access:   pair.Access,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

func (h *authHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := userIDFromContext(r.Context())

	user, err := h.useCase.Me(r.Context(), userID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toUserResponse(user))
}

func (h *authHandler) refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.MissingToken)
		return
	}

	access, err := h.useCase.Refresh(r.Context(), token)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, refreshResponse{Access: access})
}
