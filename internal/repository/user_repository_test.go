package repository

import (
	"context"
	"testing"

	"kanban-board/internal/model"
)

func TestEnsureDefaultIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first, err := repo.EnsureDefault(ctx, "Tester", "tester@example.com", "pw")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	// A second call must hand back the existing user, even with a different
	// profile, and must not insert another row.
	second, err := repo.EnsureDefault(ctx, "Someone Else", "other@example.com", "pw2")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second call returned id %s, want %s", second.ID, first.ID)
	}
	if second.Name != "Tester" || second.Email != "tester@example.com" {
		t.Errorf("existing user was overwritten: %+v", second)
	}

	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 1 {
		t.Errorf("user count = %d, want 1", count)
	}
}
