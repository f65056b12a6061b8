package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"kanban-board/internal/apperr"
	"kanban-board/internal/model"
	"kanban-board/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title      string
	Content    string
	CategoryID uuid.UUID
}

// TaskEdit carries the mutable fields of an existing task. A nil CategoryID
// leaves the task in its current category.
type TaskEdit struct {
	Title      string
	Content    string
	CategoryID *uuid.UUID
}

// TaskService wraps task-related business logic.
type TaskService struct {
	postRepo     *repository.PostRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(postRepo *repository.PostRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{postRepo: postRepo, categoryRepo: categoryRepo}
}

// Create adds a task to the todo lane of the given category. The category
// must exist; nothing is persisted otherwise.
func (s *TaskService) Create(ctx context.Context, user *model.User, input TaskInput) (*model.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	if _, err := s.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	post := model.Post{
		UserID:     user.ID,
		CategoryID: input.CategoryID,
		Title:      input.Title,
		Content:    input.Content,
		Status:     model.StatusTodo,
	}
	if err := s.postRepo.Create(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *TaskService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Edit updates title, content and optionally the category of a task.
func (s *TaskService) Edit(ctx context.Context, id uuid.UUID, edit TaskEdit) (*model.Post, error) {
	if strings.TrimSpace(edit.Title) == "" {
		return nil, apperr.Validation("title is required")
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if edit.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *edit.CategoryID); err != nil {
			return nil, err
		}
		post.CategoryID = *edit.CategoryID
	}
	post.Title = edit.Title
	post.Content = edit.Content

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.postRepo.Delete(ctx, id)
}

// SetStatus moves a task to another lane. The status must be one of the
// three fixed lanes; sort_order is left untouched.
func (s *TaskService) SetStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Post, error) {
	if !status.Valid() {
		return nil, apperr.Validation("invalid status %q", status)
	}
	return s.postRepo.SetStatus(ctx, id, status)
}

// Reorder applies a batch of position/lane/category changes atomically.
// Unknown ids are skipped and do not count toward the result.
func (s *TaskService) Reorder(ctx context.Context, changes []repository.PostOrderChange) (int, error) {
	if len(changes) == 0 {
		return 0, apperr.Validation("no task changes supplied")
	}
	for _, change := range changes {
		if change.Status != nil && !change.Status.Valid() {
			return 0, apperr.Validation("invalid status %q", *change.Status)
		}
	}
	return s.postRepo.Reorder(ctx, changes)
}
