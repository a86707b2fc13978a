package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/bookmarks/internal/entity"
)

func (suite *HandlersTestSuite) TestCreateBookmark() {
	const path = "/api/v1/bookmarks/"

	suite.Run("missing token", func() {
		suite.e.POST(path).
			WithJSON(map[string]string{"url": "https://example.com"}).
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("empty request body", func() {
		suite.e.POST(path).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("error", "empty request body")
	})

	suite.Run("invalid url", func() {
		suite.bookmarkUseCaseMock.
			On("Create", mock.Anything, int64(1), "example", "").
			Once().
			Return(nil, entity.ErrURLInvalid)

		suite.e.POST(path).
			WithHeader("Authorization", suite.accessToken(1)).
			WithJSON(map[string]string{"url": "example"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			IsEqual(map[string]any{"error": "enter a valid url"})
	})

	for _, url := range []string{"javascript:alert(1)", "foo:bar"} {
		suite.Run("non http url "+url, func() {
			suite.bookmarkUseCaseMock.
				On("Create", mock.Anything, int64(1), url, "").
				Once().
				Return(nil, entity.ErrURLInvalid)

			suite.e.POST(path).
				WithHeader("Authorization", suite.accessToken(1)).
				WithJSON(map[string]string{"url": url}).
				Expect().
				Status(http.StatusBadRequest).
				JSON().Object().
				IsEqual(map[string]any{"error": "enter a valid url"})
		})
	}

	suite.Run("url exists", func() {
		suite.bookmarkUseCaseMock.
			On("Create", mock.Anything, int64(2), "https://example.com", "").
			Once().
			Return(nil, entity.ErrURLExists)

		suite.e.POST(path).
			WithHeader("Authorization", suite.accessToken(2)).
			WithJSON(map[string]string{"url": "https://example.com"}).
			Expect().
			Status(http.StatusConflict).
			JSON().Object().
			IsEqual(map[string]any{"error": "url already exists"})
	})

	suite.Run("server error", func() {
		suite.bookmarkUseCaseMock.
			On("Create", mock.Anything, int64(1), "https://example.com", "").
			Once().
			Return(nil, errors.New("unknown error"))

		suite.e.POST(path).
			WithHeader("Authorization", suite.accessToken(1)).
			WithJSON(map[string]string{"url": "https://example.com"}).
			Expect().
			Status(http.StatusInternalServerError).
			JSON().Object().
			HasValue("error", "server error occurred")
	})

	suite.Run("success", func() {
		suite.bookmarkUseCaseMock.
			On("Create", mock.Anything, int64(1), "https://example.com", "notes").
			Once().
			Return(&entity.Bookmark{
				ID:       1,
				UserID:   1,
				URL:      "https://example.com",
				Body:     "notes",
				ShortURL: "abc",
			}, nil)

		resp := suite.e.POST(path).
			WithHeader("Authorization", suite.accessToken(1)).
			WithJSON(map[string]string{"url": "https://example.com", "body": "notes"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("url", "https://example.com")
		resp.HasValue("short_url", "abc")
		resp.HasValue("visits", 0)
		resp.HasValue("body", "notes")
		resp.ContainsKey("created_at")
		resp.ContainsKey("updated_at")
		resp.NotContainsKey("user_id")
	})
}

func (suite *HandlersTestSuite) TestListBookmarks() {
	const path = "/api/v1/bookmarks/"

	suite.Run("missing token", func() {
		suite.e.GET(path).
			Expect().
			Status(http.StatusUnauthorized)
	})

	suite.Run("non numeric values fall back to defaults", func() {
		suite.bookmarkUseCaseMock.
			On("List", mock.Anything, int64(1), 1, 5).
			Once().
			Return([]*entity.Bookmark{}, entity.NewPage(1, 5, 0), nil)

		suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			WithQuery("page", "abc").
			WithQuery("per_page", "many").
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("meta").Object().
			HasValue("page", 1)
	})

	suite.Run("page below one", func() {
		suite.bookmarkUseCaseMock.
			On("List", mock.Anything, int64(1), 0, 5).
			Once().
			Return(nil, entity.Page{}, entity.ErrBookmarkNotFound)

		suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			WithQuery("page", 0).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			HasValue("error", "record not found")
	})

	suite.Run("out of range per page", func() {
		suite.bookmarkUseCaseMock.
			On("List", mock.Anything, int64(1), 1, 101).
			Once().
			Return(nil, entity.Page{}, entity.ErrInvalidPagination)

		suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			WithQuery("per_page", 101).
			Expect().
			Status(http.StatusBadRequest)
	})

	suite.Run("first page", func() {
		items := make([]*entity.Bookmark, 5)
		for i := range items {
			items[i] = &entity.Bookmark{ID: int64(i + 1), UserID: 1, URL: fmt.Sprintf("https://%d.example.com", i+1)}
		}

		suite.bookmarkUseCaseMock.
			On("List", mock.Anything, int64(1), 1, 5).
			Once().
			Return(items, entity.NewPage(1, 5, 12), nil)

		resp := suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("data").Array().Length().IsEqual(5)
		resp.Value("data").Array().Value(0).Object().HasValue("id", 1)

		meta := resp.Value("meta").Object()
		meta.HasValue("page", 1)
		meta.HasValue("pages", 3)
		meta.HasValue("total_count", 12)
		meta.HasValue("has_next", true)
		meta.HasValue("has_prev", false)
		meta.HasValue("next_page", 2)
		meta.Value("prev_page").IsNull()
	})

	suite.Run("empty first page", func() {
		suite.bookmarkUseCaseMock.
			On("List", mock.Anything, int64(1), 1, 5).
			Once().
			Return([]*entity.Bookmark{}, entity.NewPage(1, 5, 0), nil)

		resp := suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.Value("data").Array().IsEmpty()
		resp.Value("meta").Object().HasValue("has_next", false)
	})

	suite.Run("page past the end", func() {
		suite.bookmarkUseCaseMock.
			On("List", mock.Anything, int64(1), 9, 5).
			Once().
			Return(nil, entity.Page{}, entity.ErrBookmarkNotFound)

		suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			WithQuery("page", 9).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			IsEqual(map[string]any{"error": "record not found"})
	})
}

func (suite *HandlersTestSuite) TestGetBookmark() {
	const path = "/api/v1/bookmarks/%s"

	suite.Run("non numeric id", func() {
		suite.e.GET(fmt.Sprintf(path, "abc")).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			HasValue("error", "record not found")
	})

	suite.Run("bookmark of another user", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(2), int64(1)).
			Once().
			Return(nil, entity.ErrBookmarkNotFound)

		suite.e.GET(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(2)).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			IsEqual(map[string]any{"error": "record not found"})
	})

	suite.Run("success", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(1), int64(1)).
			Once().
			Return(&entity.Bookmark{ID: 1, UserID: 1, URL: "https://example.com", ShortURL: "abc", Visits: 4}, nil)

		resp := suite.e.GET(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("id", 1)
		resp.HasValue("visits", 4)
	})
}

func (suite *HandlersTestSuite) TestUpdateBookmark() {
	const path = "/api/v1/bookmarks/%s"

	owned := &entity.Bookmark{ID: 1, UserID: 1, URL: "https://example.com", ShortURL: "abc"}

	suite.Run("url exists", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(1), int64(1)).
			Once().
			Return(owned, nil)
		suite.bookmarkUseCaseMock.
			On("Update", mock.Anything, int64(1), int64(1), "https://taken.example.com", "").
			Once().
			Return(nil, entity.ErrURLExists)

		suite.e.PUT(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(1)).
			WithJSON(map[string]string{"url": "https://taken.example.com"}).
			Expect().
			Status(http.StatusConflict).
			JSON().Object().
			HasValue("error", "url already exists")
	})

	suite.Run("bookmark not found", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(1), int64(9)).
			Once().
			Return(nil, entity.ErrBookmarkNotFound)

		suite.e.PUT(fmt.Sprintf(path, "9")).
			WithHeader("Authorization", suite.accessToken(1)).
			WithJSON(map[string]string{"url": "https://example.com"}).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("bookmark of another user with empty body", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(2), int64(1)).
			Once().
			Return(nil, entity.ErrBookmarkNotFound)

		suite.e.PUT(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(2)).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			IsEqual(map[string]any{"error": "record not found"})
	})

	suite.Run("bookmark of another user with invalid url", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(2), int64(1)).
			Once().
			Return(nil, entity.ErrBookmarkNotFound)

		suite.e.PATCH(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(2)).
			WithJSON(map[string]string{"url": "javascript:alert(1)"}).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("invalid request body", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(1), int64(1)).
			Once().
			Return(owned, nil)

		suite.e.PATCH(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(1)).
			WithText("{").
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			HasValue("error", "invalid request body")
	})

	suite.Run("non http url", func() {
		suite.bookmarkUseCaseMock.
			On("Get", mock.Anything, int64(1), int64(1)).
			Once().
			Return(owned, nil)
		suite.bookmarkUseCaseMock.
			On("Update", mock.Anything, int64(1), int64(1), "foo:bar", "").
			Once().
			Return(nil, entity.ErrURLInvalid)

		suite.e.PUT(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(1)).
			WithJSON(map[string]string{"url": "foo:bar"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object().
			IsEqual(map[string]any{"error": "enter a valid url"})
	})

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		suite.Run(method+" success", func() {
			suite.bookmarkUseCaseMock.
				On("Get", mock.Anything, int64(1), int64(1)).
				Once().
				Return(owned, nil)
			suite.bookmarkUseCaseMock.
				On("Update", mock.Anything, int64(1), int64(1), "https://example.com", "updated").
				Once().
				Return(&entity.Bookmark{ID: 1, UserID: 1, URL: "https://example.com", Body: "updated", ShortURL: "abc"}, nil)

			resp := suite.e.Request(method, fmt.Sprintf(path, "1")).
				WithHeader("Authorization", suite.accessToken(1)).
				WithJSON(map[string]string{"url": "https://example.com", "body": "updated"}).
				Expect().
				Status(http.StatusOK).
				JSON().Object()

			resp.HasValue("url", "https://example.com")
			resp.HasValue("body", "updated")
			resp.HasValue("short_url", "abc")
		})
	}
}

func (suite *HandlersTestSuite) TestDeleteBookmark() {
	const path = "/api/v1/bookmarks/%s"

	suite.Run("bookmark not found", func() {
		suite.bookmarkUseCaseMock.
			On("Delete", mock.Anything, int64(1), int64(1)).
			Once().
			Return(entity.ErrBookmarkNotFound)

		suite.e.DELETE(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().
			HasValue("error", "record not found")
	})

	suite.Run("success", func() {
		suite.bookmarkUseCaseMock.
			On("Delete", mock.Anything, int64(1), int64(1)).
			Once().
			Return(nil)

		suite.e.DELETE(fmt.Sprintf(path, "1")).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusNoContent).
			NoContent()
	})
}

func (suite *HandlersTestSuite) TestBookmarkStats() {
	const path = "/api/v1/bookmarks/stats"

	suite.Run("success", func() {
		suite.bookmarkUseCaseMock.
			On("Stats", mock.Anything, int64(1)).
			Once().
			Return([]*entity.Bookmark{
				{ID: 1, URL: "https://example.com", ShortURL: "abc", Visits: 3, Body: "hidden"},
			}, nil)

		item := suite.e.GET(path).
			WithHeader("Authorization", suite.accessToken(1)).
			Expect().
			Status(http.StatusOK).
			JSON().Object().
			Value("data").Array().Value(0).Object()

		item.IsEqual(map[string]any{
			"id":        1,
			"url":       "https://example.com",
			"short_url": "abc",
			"visits":    3,
		})
	})
}

func (suite *HandlersTestSuite) TestVisit() {
	const path = "/%s"

	suite.Run("short url not found", func() {
		suite.bookmarkUseCaseMock.
			On("Visit", mock.Anything, "nope").
			Once().
			Return(nil, entity.ErrBookmarkNotFound)

		suite.e.GET(fmt.Sprintf(path, "nope")).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("success", func() {
		suite.bookmarkUseCaseMock.
			On("Visit", mock.Anything, "abc").
			Once().
			Return(&entity.Bookmark{ID: 1, URL: "https://example.com/page", ShortURL: "abc", Visits: 1}, nil)

		suite.e.GET(fmt.Sprintf(path, "abc")).
			WithRedirectPolicy(httpexpect.DontFollowRedirects).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual("https://example.com/page")
	})
}
