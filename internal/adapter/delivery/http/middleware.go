package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
	"github.com/vadimbarashkov/bookmarks/pkg/response"
)

type contextKey string

const userIDKey contextKey = "user_id"

type tokenVerifier interface {
	Verify(token string, typ entity.TokenType) (int64, error)
}

func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// userIDFromContext returns the identity set by requireToken.
func userIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

// requireToken rejects requests without a valid bearer token of the given
// type and stores the token's user id in the request context.
func requireToken(tokens tokenVerifier, typ entity.TokenType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.MissingToken)
				return
			}

			userID, err := tokens.Verify(token, typ)
			if err != nil {
				httplog.LogEntrySetField(r.Context(), "auth_err", slog.StringValue(err.Error()))

				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.InvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
		})
	}
}
