package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kanban-board/internal/config"
	"kanban-board/internal/repository"
	"kanban-board/internal/server"
	"kanban-board/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)

	defaultUser, err := userRepo.EnsureDefault(ctx, cfg.DefaultUserName, cfg.DefaultUserEmail, cfg.DefaultUserPassword)
	if err != nil {
		log.Fatalf("default user: %v", err)
	}
	// Backfill sort_order for categories created before ordering existed.
	if err := categoryRepo.NormalizeOrder(ctx); err != nil {
		log.Fatalf("normalize category order: %v", err)
	}

	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(postRepo, categoryRepo)
	boardSvc := service.NewBoardService(categoryRepo, postRepo)
	summarySvc := service.NewSummaryService(postRepo, categoryRepo, userRepo)

	scheduler := service.NewSchedulerService(time.Local)
	summaryJob := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := summarySvc.Log(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("summary: %v", err)
		}
	}
	if cfg.SummaryTime != "" {
		if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, summaryJob); err != nil {
			log.Fatalf("schedule summary: %v", err)
		}
	} else if _, err := scheduler.ScheduleInterval(cfg.SummaryInterval, summaryJob); err != nil {
		log.Fatalf("schedule summary: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := server.New(boardSvc, categorySvc, taskSvc, defaultUser)
	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Router(),
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()
	log.Printf("Board admin listening on %s", cfg.HTTPAddr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
