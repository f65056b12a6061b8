package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"kanban-board/internal/model"
	"kanban-board/internal/repository"
)

// SummaryService builds periodic board activity reports for the logs.
type SummaryService struct {
	postRepo     *repository.PostRepository
	categoryRepo *repository.CategoryRepository
	userRepo     *repository.UserRepository
}

func NewSummaryService(postRepo *repository.PostRepository, categoryRepo *repository.CategoryRepository, userRepo *repository.UserRepository) *SummaryService {
	return &SummaryService{postRepo: postRepo, categoryRepo: categoryRepo, userRepo: userRepo}
}

// BoardSummary returns a one-line count of tasks per lane, per category and
// per user.
func (s *SummaryService) BoardSummary(ctx context.Context) (string, error) {
	posts, err := s.postRepo.ListBoard(ctx, nil)
	if err != nil {
		return "", err
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return "", err
	}

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	laneCounts := make(map[model.Status]int)
	categoryCounts := make(map[string]int)
	userCounts := make(map[string]int)
	for _, post := range posts {
		laneCounts[post.Status]++
		categoryCounts[post.CategoryName]++
		userCounts[post.UserName]++
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%d tasks", len(posts)))
	for _, status := range model.Statuses() {
		builder.WriteString(fmt.Sprintf(" | %s: %d", status, laneCounts[status]))
	}
	for _, cat := range categories {
		builder.WriteString(fmt.Sprintf(" | %s: %d", cat.Name, categoryCounts[cat.Name]))
	}
	for _, user := range users {
		builder.WriteString(fmt.Sprintf(" | %s: %d", user.Name, userCounts[user.Name]))
	}
	return builder.String(), nil
}

// Log writes the board summary to the application log.
func (s *SummaryService) Log(ctx context.Context) error {
	summary, err := s.BoardSummary(ctx)
	if err != nil {
		return err
	}
	slog.Info("board summary", "summary", summary)
	return nil
}
