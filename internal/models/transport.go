package models

import (
	"time"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db"
)

type AuthReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResp struct {
	Token string `json:"token"`
}

type UserEditReq struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

type UserResp struct {
	ID        uint64    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
}

// BookmarkCreateReq has no owner field, bookmarks always belong to the caller.
type BookmarkCreateReq struct {
	Title       string  `json:"title" validate:"required"`
	Link        string  `json:"link" validate:"required"`
	Description *string `json:"description"`
}

type BookmarkEditReq struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Link        *string `json:"link" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type BookmarkResp struct {
	ID          uint64    `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description"`
	UserID      uint64    `json:"userId"`
}

func NewUserResp(u *db.User) UserResp {
	return UserResp{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewBookmarkResp(b *db.Bookmark) BookmarkResp {
	return BookmarkResp{
		ID:          b.ID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Title:       b.Title,
		Link:        b.Link,
		Description: b.Description,
		UserID:      b.UserID,
	}
}

func NewBookmarkRespList(bookmarks []db.Bookmark) []BookmarkResp {
	resp := make([]BookmarkResp, len(bookmarks))
	for i := range bookmarks {
		resp[i] = NewBookmarkResp(&bookmarks[i])
	}
	return resp
}
