package repository

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"kanban-board/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func newTestUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user, err := NewUserRepository(db).EnsureDefault(context.Background(), "Tester", "tester@example.com", "pw")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func newTestCategory(t *testing.T, db *gorm.DB, user *model.User, name string) *model.Category {
	t.Helper()
	category, err := NewCategoryRepository(db).Create(context.Background(), user.ID, name)
	if err != nil {
		t.Fatalf("create test category %q: %v", name, err)
	}
	return category
}

func newTestPost(t *testing.T, db *gorm.DB, user *model.User, category *model.Category, title string) *model.Post {
	t.Helper()
	post := &model.Post{
		UserID:     user.ID,
		CategoryID: category.ID,
		Title:      title,
	}
	if err := NewPostRepository(db).Create(context.Background(), post); err != nil {
		t.Fatalf("create test post %q: %v", title, err)
	}
	return post
}
