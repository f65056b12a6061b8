package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kanban-board/internal/apperr"
	"kanban-board/internal/model"
)

// PostOrderChange is one entry of a batch reorder: a new position and,
// optionally, a new lane and/or category for the post.
type PostOrderChange struct {
	ID         uuid.UUID
	SortOrder  int
	Status     *model.Status
	CategoryID *uuid.UUID
}

// PostRepository handles CRUD for posts.
type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	switch {
	case err == nil:
		return &post, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFound("post %s not found", id)
	default:
		return nil, fmt.Errorf("find post: %w", err)
	}
}

func (r *PostRepository) Save(ctx context.Context, post *model.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return fmt.Errorf("save post: %w", err)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("post %s not found", id)
	}
	return nil
}

// SetStatus moves a post to another lane without touching its sort_order.
func (r *PostRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Post, error) {
	res := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("set post status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("post %s not found", id)
	}
	return r.GetByID(ctx, id)
}

// Reorder applies a batch of position/lane/category changes in one
// transaction. Unknown ids are skipped; the count of posts actually updated
// is returned.
func (r *PostRepository) Reorder(ctx context.Context, changes []PostOrderChange) (int, error) {
	var updated int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, change := range changes {
			updates := map[string]interface{}{"sort_order": change.SortOrder}
			if change.Status != nil {
				updates["status"] = *change.Status
			}
			if change.CategoryID != nil {
				var count int64
				if err := tx.Model(&model.Category{}).Where("id = ?", *change.CategoryID).Count(&count).Error; err != nil {
					return fmt.Errorf("check category: %w", err)
				}
				if count == 0 {
					return apperr.NotFound("category %s not found", *change.CategoryID)
				}
				updates["category_id"] = *change.CategoryID
			}

			res := tx.Model(&model.Post{}).Where("id = ?", change.ID).Updates(updates)
			if res.Error != nil {
				return fmt.Errorf("reorder post %s: %w", change.ID, res.Error)
			}
			updated += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(updated), nil
}

func (r *PostRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).
		Order("sort_order ASC, created_at ASC, id ASC").
		Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListBoard returns the flat board projection, optionally filtered to one
// category. Ordering is deterministic: sort_order, then creation time, then id.
func (r *PostRepository) ListBoard(ctx context.Context, categoryID *uuid.UUID) ([]model.BoardPost, error) {
	q := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.title, posts.content, posts.status, posts.category_id, posts.sort_order, posts.user_id, categories.name AS category_name, users.name AS user_name").
		Joins("JOIN categories ON categories.id = posts.category_id").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.sort_order ASC, posts.created_at ASC, posts.id ASC")
	if categoryID != nil {
		q = q.Where("posts.category_id = ?", *categoryID)
	}

	var posts []model.BoardPost
	if err := q.Scan(&posts).Error; err != nil {
		return nil, fmt.Errorf("list board posts: %w", err)
	}
	return posts, nil
}
