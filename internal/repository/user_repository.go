package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"kanban-board/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureDefault returns the first user, creating one with the given profile
// when the table is empty. Board entities are attributed to this user until
// real accounts exist.
func (r *UserRepository) EnsureDefault(ctx context.Context, name, email, password string) (*model.User, error) {
	var user model.User
	db := r.db.WithContext(ctx)
	err := db.Order("created_at ASC").First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case err == gorm.ErrRecordNotFound:
		user = model.User{
			Name:     name,
			Email:    email,
			Password: password,
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create default user: %w", err)
		}
		return &user, nil
	default:
		return nil, fmt.Errorf("find default user: %w", err)
	}
}

func (r *UserRepository) ListAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
