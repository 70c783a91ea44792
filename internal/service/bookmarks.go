package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarker-back/internal/db"
)

// BookmarkRepository is the persistence the bookmark store needs. Lookups
// return (nil, nil) when no row matches.
type BookmarkRepository interface {
	Create(ctx context.Context, b *db.Bookmark) error
	ListByUser(ctx context.Context, userID uint64) ([]db.Bookmark, error)
	FindByID(ctx context.Context, id uint64) (*db.Bookmark, error)
	FindByIDAndUser(ctx context.Context, id, userID uint64) (*db.Bookmark, error)
	Update(ctx context.Context, id, userID uint64, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id, userID uint64) (bool, error)
}

type (
	CreateBookmark struct {
		Title       string
		Link        string
		Description *string
	}

	// EditBookmark holds the fields to overwrite; nil fields keep their value.
	EditBookmark struct {
		Title       *string
		Link        *string
		Description *string
	}
)

func (e EditBookmark) fields() map[string]interface{} {
	fields := make(map[string]interface{}, 3)
	if e.Title != nil {
		fields["title"] = *e.Title
	}
	if e.Link != nil {
		fields["link"] = *e.Link
	}
	if e.Description != nil {
		fields["description"] = *e.Description
	}
	return fields
}

// Bookmarks is the owner-scoped bookmark store. userID is always the
// authenticated caller.
type Bookmarks struct {
	repo   BookmarkRepository
	logger *zap.SugaredLogger
}

func NewBookmarks(repo BookmarkRepository, l *zap.SugaredLogger) *Bookmarks {
	return &Bookmarks{
		repo:   repo,
		logger: l,
	}
}

func (s *Bookmarks) Create(ctx context.Context, userID uint64, req CreateBookmark) (*db.Bookmark, error) {
	model := db.Bookmark{
		Title:       req.Title,
		Link:        req.Link,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, &model); err != nil {
		return nil, err
	}

	s.logger.Debugw("bookmark created", "user_id", userID, "bookmark_id", model.ID)
	return &model, nil
}

func (s *Bookmarks) List(ctx context.Context, userID uint64) ([]db.Bookmark, error) {
	bookmarks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if bookmarks == nil {
		bookmarks = make([]db.Bookmark, 0)
	}
	return bookmarks, nil
}

// Get returns nil without an error when the bookmark does not exist or
// belongs to someone else.
func (s *Bookmarks) Get(ctx context.Context, userID, bookmarkID uint64) (*db.Bookmark, error) {
	return s.repo.FindByIDAndUser(ctx, bookmarkID, userID)
}

func (s *Bookmarks) Edit(ctx context.Context, userID, bookmarkID uint64, req EditBookmark) (*db.Bookmark, error) {
	bookmark, err := s.authorize(ctx, userID, bookmarkID, "edit")
	if err != nil {
		return nil, err
	}

	fields := req.fields()
	if len(fields) == 0 {
		return bookmark, nil
	}

	// scoped by owner as well: the row may have changed hands or vanished since the check
	ok, err := s.repo.Update(ctx, bookmarkID, userID, fields)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBookmarkNotFound
	}

	updated, err := s.repo.FindByIDAndUser(ctx, bookmarkID, userID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookmarkNotFound
	}

	s.logger.Debugw("bookmark edited", "user_id", userID, "bookmark_id", bookmarkID)
	return updated, nil
}

// Delete removes the bookmark permanently and returns it as it was.
func (s *Bookmarks) Delete(ctx context.Context, userID, bookmarkID uint64) (*db.Bookmark, error) {
	bookmark, err := s.authorize(ctx, userID, bookmarkID, "delete")
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.Delete(ctx, bookmarkID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBookmarkNotFound
	}

	s.logger.Debugw("bookmark deleted", "user_id", userID, "bookmark_id", bookmarkID)
	return bookmark, nil
}

// authorize fetches by id alone, then compares owners. Existence is checked
// first: a missing bookmark is NotFound for everyone.
func (s *Bookmarks) authorize(ctx context.Context, userID, bookmarkID uint64, action string) (*db.Bookmark, error) {
	bookmark, err := s.repo.FindByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, ErrBookmarkNotFound
	}
	if bookmark.UserID != userID {
		s.logger.Infow("bookmark access denied",
			"action", action, "user_id", userID, "bookmark_id", bookmarkID, "owner_id", bookmark.UserID)
		return nil, errUnauthorized(action)
	}
	return bookmark, nil
}
