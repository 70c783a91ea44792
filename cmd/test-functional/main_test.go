//go:build functional

package test_functional

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/models"
)

func signup(t *testing.T, ctx context.Context, email string) string {
	t.Helper()

	u := AppBaseURL
	u.Path = "/auth/signup"

	resp, err := resty.New().
		R().
		SetContext(ctx).
		SetResult(&models.TokenResp{}).
		SetBody(models.AuthReq{Email: email, Password: "111111111111"}).
		Post(u.String())
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())

	got, ok := resp.Result().(*models.TokenResp)
	require.True(t, ok)
	require.NotEmpty(t, got.Token)
	return got.Token
}

func TestSignup(t *testing.T) {
	u := AppBaseURL
	u.Path = "/auth/signup"

	t.Run("successful signup", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		signup(t, ctx, "test@gmail.com")

		var (
			id       uint64
			password string
		)
		err := DBConn.QueryRow(ctx, "SELECT id, password FROM users WHERE email=$1", "test@gmail.com").Scan(&id, &password)
		require.NoError(t, err)
		assert.NotZero(t, id)
		assert.NotEqual(t, "111111111111", password)
	})

	t.Run("duplicate email", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		signup(t, ctx, "test@gmail.com")

		resp, err := resty.New().
			R().
			SetContext(ctx).
			SetBody(models.AuthReq{Email: "test@gmail.com", Password: "111111111111"}).
			Post(u.String())
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode())
	})

	t.Run("bad body", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		resp, err := resty.New().
			R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetBody(`
			{"something": "???"}
		`).
			Post(u.String())
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})
}

func TestBookmarksCrud(t *testing.T) {
	defer FlushDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	owner := resty.New().SetAuthToken(signup(t, ctx, "owner@gmail.com"))
	other := resty.New().SetAuthToken(signup(t, ctx, "other@gmail.com"))

	listURL := AppBaseURL
	listURL.Path = "/bookmarks"

	resp, err := owner.R().
		SetContext(ctx).
		SetResult(&models.BookmarkResp{}).
		SetBody(models.BookmarkCreateReq{Title: "First Bookmark", Link: "https://example.com"}).
		Post(listURL.String())
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	created := resp.Result().(*models.BookmarkResp)

	itemURL := AppBaseURL
	itemURL.Path = fmt.Sprintf("/bookmarks/%d", created.ID)

	t.Run("list", func(t *testing.T) {
		resp, err := owner.R().
			SetContext(ctx).
			SetResult(&[]models.BookmarkResp{}).
			Get(listURL.String())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())

		got := *resp.Result().(*[]models.BookmarkResp)
		require.Len(t, got, 1)
		assert.Equal(t, created.ID, got[0].ID)
		assert.Equal(t, "First Bookmark", got[0].Title)

		resp, err = other.R().SetContext(ctx).Get(listURL.String())
		require.NoError(t, err)
		assert.JSONEq(t, `[]`, resp.String())
	})

	t.Run("foreign edit is rejected", func(t *testing.T) {
		resp, err := other.R().
			SetContext(ctx).
			SetBody(map[string]string{"title": "stolen"}).
			Patch(itemURL.String())
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode())

		var title string
		require.NoError(t, DBConn.QueryRow(ctx, "SELECT title FROM bookmarks WHERE id=$1", created.ID).Scan(&title))
		assert.Equal(t, "First Bookmark", title)
	})

	t.Run("edit", func(t *testing.T) {
		resp, err := owner.R().
			SetContext(ctx).
			SetResult(&models.BookmarkResp{}).
			SetBody(map[string]string{"title": "Edited"}).
			Patch(itemURL.String())
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())

		got := resp.Result().(*models.BookmarkResp)
		assert.Equal(t, "Edited", got.Title)
		assert.Equal(t, created.Link, got.Link)
	})

	t.Run("delete", func(t *testing.T) {
		resp, err := owner.R().SetContext(ctx).Delete(itemURL.String())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode())

		resp, err = owner.R().SetContext(ctx).Get(itemURL.String())
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
		assert.JSONEq(t, `null`, resp.String())

		resp, err = owner.R().SetContext(ctx).Delete(itemURL.String())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	})
}
