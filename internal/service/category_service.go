package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"kanban-board/internal/apperr"
	"kanban-board/internal/model"
	"kanban-board/internal/repository"
)

// CategoryService wraps category-related business logic.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

// Create adds a category at the end of the board.
func (s *CategoryService) Create(ctx context.Context, user *model.User, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}
	return s.repo.Create(ctx, user.ID, name)
}

// Delete removes a category together with all its posts.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Reorder applies a positional ordering of category ids. Ids that resolve to
// no category are skipped; the count of categories moved is returned.
func (s *CategoryService) Reorder(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, apperr.Validation("category_ids is required")
	}
	return s.repo.Reorder(ctx, ids)
}
