package db

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// BookmarkRepository returns store errors as-is so callers can tell them
// apart from their own outcomes.
type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Create(ctx context.Context, b *Bookmark) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// ListByUser returns the user's bookmarks in insertion order.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uint64) ([]Bookmark, error) {
	sql, args, err := squirrel.
		Select("id", "created_at", "updated_at", "title", "link", "description", "user_id").
		From("bookmarks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	bookmarks := make([]Bookmark, 0)
	res := r.db.WithContext(ctx).Raw(sql, args...).Scan(&bookmarks)
	if res.Error != nil {
		return nil, res.Error
	}
	return bookmarks, nil
}

// FindByID looks a bookmark up regardless of owner. A missing row is (nil, nil).
func (r *BookmarkRepository) FindByID(ctx context.Context, id uint64) (*Bookmark, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDAndUser is FindByID restricted to one owner.
func (r *BookmarkRepository) FindByIDAndUser(ctx context.Context, id, userID uint64) (*Bookmark, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID))
}

// Update applies column values to the owner's bookmark and reports whether a
// row matched.
func (r *BookmarkRepository) Update(ctx context.Context, id, userID uint64, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Bookmark{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, id, userID uint64) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *BookmarkRepository) first(q *gorm.DB) (*Bookmark, error) {
	b := Bookmark{}
	res := q.First(&b)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &b, nil
}
