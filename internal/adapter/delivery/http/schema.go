package http

import (
	"time"

	"github.com/vadimbarashkov/bookmarks/internal/entity"
)

type registerRequest struct {
	Username string `json:"username" validate:"max=80"`
	Email    string `json:"email" validate:"max=120"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// bookmarkRequest is shared by create and both update verbs.
type bookmarkRequest struct {
	URL  string `json:"url"`
	Body string `json:"body" validate:"max=10000"`
}

type userResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		Username: user.Username,
		Email:    user.Email,
	}
}

type registerResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type loginUser struct {
	Refresh  string `json:"refresh"`
	Access   string `json:"access"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	User loginUser `json:"user"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

type bookmarkResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	ShortURL  string    `json:"short_url"`
	Visits    int64     `json:"visits"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBookmarkResponse(b *entity.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:        b.ID,
		URL:       b.URL,
		ShortURL:  b.ShortURL,
		Visits:    b.Visits,
		Body:      b.Body,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type pageMeta struct {
	Page       int  `json:"page"`
	Pages      int  `json:"pages"`
	TotalCount int  `json:"total_count"`
	PrevPage   *int `json:"prev_page"`
	NextPage   *int `json:"next_page"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type bookmarkListResponse struct {
	Data []bookmarkResponse `json:"data"`
	Meta pageMeta           `json:"meta"`
}

func toBookmarkListResponse(bookmarks []*entity.Bookmark, page entity.Page) bookmarkListResponse {
	data := make([]bookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		data = append(data, toBookmarkResponse(b))
	}

	return bookmarkListResponse{
		Data: data,
		Meta: pageMeta{
			Page:       page.Page,
			Pages:      page.Pages,
			TotalCount: page.Total,
			PrevPage:   page.PrevPage,
			NextPage:   page.NextPage,
			HasNext:    page.HasNext,
			HasPrev:    page.HasPrev,
		},
	}
}

type bookmarkStats struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	ShortURL string `json:"short_url"`
	Visits   int64  `json:"visits"`
}

type bookmarkStatsResponse struct {
	Data []bookmarkStats `json:"data"`
}

func toBookmarkStatsResponse(bookmarks []*entity.Bookmark) bookmarkStatsResponse {
	data := make([]bookmarkStats, 0, len(bookmarks))
	for _, b := range bookmarks {
		data = append(data, bookmarkStats{
			ID:       b.ID,
			URL:      b.URL,
			ShortURL: b.ShortURL,
			Visits:   b.Visits,
		})
	}

	return bookmarkStatsResponse{Data: data}
}
