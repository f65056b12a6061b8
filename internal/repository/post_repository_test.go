package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"kanban-board/internal/apperr"
	"kanban-board/internal/model"
)

func TestPostCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	work := newTestCategory(t, db, user, "Work")

	post := newTestPost(t, db, user, work, "Buy milk")

	if post.ID == uuid.Nil {
		t.Error("post id was not assigned")
	}
	if post.Status != model.StatusTodo {
		t.Errorf("status = %s, want %s", post.Status, model.StatusTodo)
	}
	if post.SortOrder != 0 {
		t.Errorf("sort_order = %d, want 0", post.SortOrder)
	}
}

func TestPostSetStatus(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	work := newTestCategory(t, db, user, "Work")
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := newTestPost(t, db, user, work, "Report")

	updated, err := repo.SetStatus(ctx, post.ID, model.StatusProgress)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if updated.Status != model.StatusProgress {
		t.Errorf("status = %s, want %s", updated.Status, model.StatusProgress)
	}
	if updated.SortOrder != post.SortOrder {
		t.Errorf("sort_order changed from %d to %d", post.SortOrder, updated.SortOrder)
	}

	if _, err := repo.SetStatus(ctx, uuid.New(), model.StatusArchive); !apperr.IsNotFound(err) {
		t.Errorf("expected not found for unknown post, got %v", err)
	}
}

func TestPostReorder(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	work := newTestCategory(t, db, user, "Work")
	repo := NewPostRepository(db)
	ctx := context.Background()

	a := newTestPost(t, db, user, work, "A")
	b := newTestPost(t, db, user, work, "B")

	t.Run("last call wins", func(t *testing.T) {
		updated, err := repo.Reorder(ctx, []PostOrderChange{
			{ID: a.ID, SortOrder: 2},
			{ID: b.ID, SortOrder: 1},
		})
		if err != nil {
			t.Fatalf("reorder: %v", err)
		}
		if updated != 2 {
			t.Errorf("updated = %d, want 2", updated)
		}

		posts, err := repo.ListByCategory(ctx, work.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if posts[0].Title != "B" || posts[1].Title != "A" {
			t.Errorf("order = [%s %s], want [B A]", posts[0].Title, posts[1].Title)
		}
	})

	t.Run("ids absent from a call keep their order", func(t *testing.T) {
		if _, err := repo.Reorder(ctx, []PostOrderChange{{ID: b.ID, SortOrder: 5}}); err != nil {
			t.Fatalf("reorder: %v", err)
		}
		got, err := repo.GetByID(ctx, a.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.SortOrder != 2 {
			t.Errorf("untouched post sort_order = %d, want 2", got.SortOrder)
		}
	})

	t.Run("unknown ids are skipped silently", func(t *testing.T) {
		updated, err := repo.Reorder(ctx, []PostOrderChange{
			{ID: uuid.New(), SortOrder: 0},
			{ID: a.ID, SortOrder: 0},
		})
		if err != nil {
			t.Fatalf("reorder: %v", err)
		}
		if updated != 1 {
			t.Errorf("updated = %d, want 1", updated)
		}
	})

	t.Run("lane and category move in one change", func(t *testing.T) {
		home := newTestCategory(t, db, user, "Home")
		status := model.StatusProgress
		if _, err := repo.Reorder(ctx, []PostOrderChange{
			{ID: a.ID, SortOrder: 3, Status: &status, CategoryID: &home.ID},
		}); err != nil {
			t.Fatalf("reorder: %v", err)
		}

		got, err := repo.GetByID(ctx, a.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != model.StatusProgress || got.CategoryID != home.ID || got.SortOrder != 3 {
			t.Errorf("post after move = {status %s, category %s, sort %d}", got.Status, got.CategoryID, got.SortOrder)
		}
	})

	t.Run("missing target category fails the whole batch", func(t *testing.T) {
		before, err := repo.GetByID(ctx, b.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}

		missing := uuid.New()
		_, err = repo.Reorder(ctx, []PostOrderChange{
			{ID: b.ID, SortOrder: 99},
			{ID: a.ID, SortOrder: 1, CategoryID: &missing},
		})
		if !apperr.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}

		after, err := repo.GetByID(ctx, b.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if after.SortOrder != before.SortOrder {
			t.Errorf("partial batch persisted: sort_order %d -> %d", before.SortOrder, after.SortOrder)
		}
	})
}

func TestPostListBoard(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	work := newTestCategory(t, db, user, "Work")
	home := newTestCategory(t, db, user, "Home")
	repo := NewPostRepository(db)
	ctx := context.Background()

	newTestPost(t, db, user, work, "Report")
	newTestPost(t, db, user, home, "Laundry")

	t.Run("joins category and user names", func(t *testing.T) {
		posts, err := repo.ListBoard(ctx, nil)
		if err != nil {
			t.Fatalf("list board: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("got %d posts, want 2", len(posts))
		}
		for _, post := range posts {
			if post.UserName != user.Name {
				t.Errorf("user_name = %q, want %q", post.UserName, user.Name)
			}
			if post.CategoryName == "" {
				t.Errorf("post %s has empty category_name", post.Title)
			}
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		posts, err := repo.ListBoard(ctx, &work.ID)
		if err != nil {
			t.Fatalf("list board: %v", err)
		}
		if len(posts) != 1 || posts[0].Title != "Report" {
			t.Fatalf("filtered board = %+v, want only Report", posts)
		}
	})
}

func TestPostDelete(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	work := newTestCategory(t, db, user, "Work")
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := newTestPost(t, db, user, work, "Gone soon")

	if err := repo.Delete(ctx, post.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, post.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}
