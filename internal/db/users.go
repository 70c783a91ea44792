package db

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*User, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *UserRepository) Update(ctx context.Context, id uint64, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(fields)
	return res.Error
}

func (r *UserRepository) first(q *gorm.DB) (*User, error) {
	u := User{}
	res := q.First(&u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &u, nil
}
