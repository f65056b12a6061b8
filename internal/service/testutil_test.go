package service

import (
	"context"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"kanban-board/internal/model"
	"kanban-board/internal/repository"
)

type testEnv struct {
	db          *gorm.DB
	user        *model.User
	categorySvc *CategoryService
	taskSvc     *TaskService
	boardSvc    *BoardService
	summarySvc  *SummaryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	user, err := userRepo.EnsureDefault(context.Background(), "Tester", "tester@example.com", "pw")
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)

	return &testEnv{
		db:          db,
		user:        user,
		categorySvc: NewCategoryService(categoryRepo),
		taskSvc:     NewTaskService(postRepo, categoryRepo),
		boardSvc:    NewBoardService(categoryRepo, postRepo),
		summarySvc:  NewSummaryService(postRepo, categoryRepo, userRepo),
	}
}
