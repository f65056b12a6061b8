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

// CategoryRepository manages board categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category at the end of the board. Duplicate names are
// rejected with a conflict error.
func (r *CategoryRepository) Create(ctx context.Context, userID uuid.UUID, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return fmt.Errorf("check category name: %w", err)
		}
		if count > 0 {
			return apperr.Conflict("category %q already exists", name)
		}

		var next int
		row := tx.Model(&model.Category{}).Select("COALESCE(MAX(sort_order)+1, 0)").Row()
		if err := row.Scan(&next); err != nil {
			return fmt.Errorf("next sort order: %w", err)
		}

		category = model.Category{UserID: userID, Name: name, SortOrder: next}
		if err := tx.Create(&category).Error; err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List returns all categories in display order.
func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).
		Order("sort_order ASC, created_at ASC, id ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFound("category %s not found", id)
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

// Delete removes a category and every post inside it as one unit of work.
func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category model.Category
		if err := tx.Where("id = ?", id).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("category %s not found", id)
			}
			return fmt.Errorf("find category: %w", err)
		}

		// Posts go first so the category is never left without its children.
		if err := tx.Where("category_id = ?", id).Delete(&model.Post{}).Error; err != nil {
			return fmt.Errorf("delete category posts: %w", err)
		}
		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
}

// Reorder applies a positional ordering: the index of each id in the slice
// becomes its sort_order. Unknown ids are skipped; the count of rows actually
// updated is returned.
func (r *CategoryRepository) Reorder(ctx context.Context, ids []uuid.UUID) (int, error) {
	var updated int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			res := tx.Model(&model.Category{}).Where("id = ?", id).Update("sort_order", i)
			if res.Error != nil {
				return fmt.Errorf("reorder category %s: %w", id, res.Error)
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

// NormalizeOrder rewrites sort_order to a dense 0..n-1 sequence in current
// display order. Used at startup to backfill rows created before sort_order
// existed.
func (r *CategoryRepository) NormalizeOrder(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var categories []model.Category
		if err := tx.Order("sort_order ASC, created_at ASC, id ASC").Find(&categories).Error; err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		for i, cat := range categories {
			if cat.SortOrder == i {
				continue
			}
			if err := tx.Model(&model.Category{}).Where("id = ?", cat.ID).
				Update("sort_order", i).Error; err != nil {
				return fmt.Errorf("normalize category %s: %w", cat.ID, err)
			}
		}
		return nil
	})
}
