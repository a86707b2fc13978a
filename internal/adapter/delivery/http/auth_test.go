package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/bookmarks/internal/adapter/token"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
)

func (suite *HandlersTestSuite) TestRegister() {
	const path = "/api/v1/auth/register"

	body := map[string]string{
		"username": "john",
		"email":    "john@example.com",
		"password": "secret1",
	}

	suite.Run("empty request body", func() {
		suite.e.POST(path).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("error", "empty request body")
	})

	suite.Run("invalid request body", func() {
		suite.e.POST(path).
			WithJSON("invalid body").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("error", "invalid request body")
	})

	suite.Run("validation error", func() {
		resp := suite.e.POST(path).
			WithJSON(map[string]string{
				"username": strings.Repeat("a", 81),
				"email":    "john@example.com",
				"password": "secret1",
			}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.HasValue("error", "validation error")
		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "username").
			ContainsKey("message")
	})

	policy := []struct {
		name string
		err  error
	}{
		{"password too short", entity.ErrPasswordTooShort},
		{"username too short", entity.ErrUsernameTooShort},
		{"username not alphanumeric", entity.ErrUsernameNotAlphanumeric},
		{"email not valid", entity.ErrEmailInvalid},
	}

	for _, tt := range policy {
		suite.Run(tt.name, func() {
			suite.authUseCaseMock.
				On("Register", mock.Anything, "john", "john@example.com", "secret1").
				Once().
				Return(nil, tt.err)

			suite.e.POST(path).
				WithJSON(body).
				Expect().
				Status(http.StatusBadRequest).
				JSON().Object().
				IsEqual(map[string]any{"error": tt.err.Error()})
		})
	}

	suite.Run("email taken", func() {
		suite.authUseCaseMock.
			On("Register", mock.Anything, "john", "john@example.com", "secret1").
			Once().
			Return(nil, entity.ErrEmailTaken)

		suite.e.POST(path).
			WithJSON(body).
			Expect().
			Status(http.StatusConflict).
			JSON().Object().
			HasValue("error", "email already taken")
	})

	suite.Run("username taken", func() {
		suite.authUseCaseMock.
			On("Register", mock.Anything, "john", "john@example.com", "secret1").
			Once().
			Return(nil, entity.ErrUsernameTaken)

		suite.e.POST(path).
			WithJSON(body).
			Expect().
			Status(http.StatusConflict).
			JSON().Object().
			HasValue("error", "username already taken")
	})

	suite.Run("server error", func() {
		suite.authUseCaseMock.
			On("Register", mock.Anything, "john", "john@example.com", "secret1").
			Once().
			Return(nil, errors.New("connection refused"))

		suite.e.POST(path).
			WithJSON(body).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			IsEqual(map[string]any{"error": "server error occurred"})
	})

	suite.Run("success", func() {
		suite.authUseCaseMock.
			On("Register", mock.Anything, "john", "john@example.com", "secret1").
			Once().
			Return(&entity.User{ID: 1, Username: "john", Email: "john@example.com"}, nil)

		resp := suite.e.POST(path).
			WithJSON(body).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("message", "user created")
		user := resp.Value("user").Object()
		user.HasValue("username", "john")
		user.HasValue("email", "john@example.com")
		user.NotContainsKey("password")
		user.NotContainsKey("id")
	})
}

func (suite *HandlersTestSuite) TestLogin() {
	const path = "/api/v1/auth/login"

	suite.Run("unknown email and wrong password look the same", func() {
		suite.authUseCaseMock.
			On("Login", mock.Anything, "jane@example.com", "secret1").
			Once().
			Return(nil, nil, entity.ErrInvalidCredentials)
		suite.authUseCaseMock.
			On("Login", mock.Anything, "john@example.com", "wrong-password").
			Once().
			Return(nil, nil, entity.ErrInvalidCredentials)

		unknown := suite.e.POST(path).
			WithJSON(map[string]string{"email": "jane@example.com", "password": "secret1"}).
			Expect().
			Status(http.StatusUnauthorized).
			Body().Raw()

		wrong := suite.e.POST(path).
			WithJSON(map[string]string{"email": "john@example.com", "password": "wrong-password"}).
			Expect().
			Status(http.StatusUnauthorized).
			Body().Raw()

		suite.Equal(unknown, wrong)
		suite.JSONEq(`{"error":"wrong credential!"}`, unknown)
	})

	suite.Run("server error", func() {
		suite.authUseCaseMock.
			On("Login", mock.Anything, "john@example.com", "secret1").
			Once().
			Return(nil, nil, errors.New("connection refused"))

		suite.e.POST(path).
			WithJSON(map[string]string{"email": "john@example.com", "password": "secret1"}).
			Expect().
			Status(http.StatusInternalServerError)
	})

	suite.Run("success", func() {
		suite.authUseCaseMock.
			On("Login", mock.Anything, "john@example.com", "secret1").
			Once().
			Return(
				&entity.User{ID: 1, Username: "john", Email: "john@example.com"},
				&entity.TokenPair{Access: "access-token", Refresh: "refresh-token"},
				nil,
			)

		user := suite.e.POST(path).
			WithJSON(map[string]string{"email": "john@example.com", "password": "secret1"}).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("user").Object()

		user.HasValue("access", "access-token")
		user.HasValue("refresh", "refresh-token")
		user.HasValue("username", "john")
		user.HasValue("email", "john@example.com")
	})
}

func (suite *HandlersTestSuite) TestMe() {
	const path = "/api/v1/auth/me"

	suite.Run("missing token", func() {
		suite.e.GET(path).
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().
			ContainsKey("error")
	})

	suite.Run("malformed header", func() {
		suite.e.GET(path).
			WithHeader("Authorization", "Token abc").
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("refresh token", func() {
		suite.e.GET(path).
			WithHeader("Authorization", suite.refreshToken(1)).
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().
			ContainsKey("error")
	})

	suite.Run("expired token", func() {
		expired, err := token.NewManager(testSecret, -time.Minute, time.Hour).IssueAccess(1)
		suite.Require().NoError(err)

		suite.e.GET(path).
			WithHeader("Authorization", "Bearer "+expired).
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("token signed with another secret", func() {
		forged, err := token.NewManager("another-secret", time.Minute, time.Hour).IssueAccess(1)
		suite.Require().NoError(err)

		suite.e.GET(path).
			WithHeader("Authorization", "Bearer "+forged).
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("user not found", func() {
		suite.authUseCaseMock.
			On("Me", mock.Anything, int64(1)).
			Once().
			Return(nil, entity.ErrUserNotFound)

		suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("success", func() {
		suite.authUseCaseMock.
			On("Me", mock.Anything, int64(1)).
			Once().
			Return(&entity.User{ID: 1, Username: "john", Email: "john@example.com"}, nil)

		suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			IsEqual(map[string]any{"username": "john", "email": "john@example.com"})
	})
}

func (suite *HandlersTestSuite) TestRefresh() {
	const path = "/api/v1/auth/token/refresh"

	suite.Run("missing token", func() {
		suite.e.POST(path).
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("invalid token", func() {
		suite.authUseCaseMock.
			On("Refresh", mock.Anything, "garbage").
			Once().
			Return("", entity.ErrInvalidToken)

		suite.e.POST(path).
			WithHeader("Authorization", "Bearer garbage").
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().
			ContainsKey("error")
	})

	suite.Run("success", func() {
		suite.authUseCaseMock.
			On("Refresh", mock.Anything, "refresh-token").
			Once().
			Return("access-token", nil)

		suite.e.POST(path).
			WithHeader("Authorization", "Bearer refresh-token").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			IsEqual(map[string]any{"access": "access-token"})
	})
}
