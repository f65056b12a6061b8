package service

import (
	"context"

	"github.com/google/uuid"

	"kanban-board/internal/model"
	"kanban-board/internal/repository"
)

// BoardView is the full board state: categories in display order, the flat
// list of posts, and the same posts grouped per lane.
type BoardView struct {
	Categories []model.Category                   `json:"categories"`
	Posts      []model.BoardPost                  `json:"posts"`
	Lanes      map[model.Status][]model.BoardPost `json:"lanes"`
}

// BoardService assembles the admin board from categories and posts.
type BoardService struct {
	categoryRepo *repository.CategoryRepository
	postRepo     *repository.PostRepository
}

func NewBoardService(categoryRepo *repository.CategoryRepository, postRepo *repository.PostRepository) *BoardService {
	return &BoardService{categoryRepo: categoryRepo, postRepo: postRepo}
}

// Board returns the board, optionally filtered to a single category. Posts
// keep their listing order inside each lane.
func (s *BoardService) Board(ctx context.Context, categoryID *uuid.UUID) (*BoardView, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListBoard(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	lanes := make(map[model.Status][]model.BoardPost, len(model.Statuses()))
	for _, status := range model.Statuses() {
		lanes[status] = []model.BoardPost{}
	}
	for _, post := range posts {
		lanes[post.Status] = append(lanes[post.Status], post)
	}

	return &BoardView{Categories: categories, Posts: posts, Lanes: lanes}, nil
}
