package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.uber.org/zap"

	"taskmanager/internal/auth"
	"taskmanager/internal/config"
	"taskmanager/internal/db"
	apperrors "taskmanager/internal/errors"
	"taskmanager/internal/logger"
	"taskmanager/internal/model"
	"taskmanager/internal/repository"
	"taskmanager/internal/service"
)

// seedTask is one sample task created for the demo user.
type seedTask struct {
	Title       string
	Description string
	Status      model.TaskStatus
}

var demoTasks = []seedTask{
	{Title: "Read the API docs", Description: "Open /swagger/index.html", Status: model.TaskStatusDone},
	{Title: "Create your first task", Description: "POST /tasks with a title", Status: model.TaskStatusInProgress},
	{Title: "Log out", Status: model.TaskStatusPending},
}

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	gormDB, err := db.NewMySQL(cfg.Database, zl)
	if err != nil {
		zl.Fatal("database init", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		zl.Fatal("database migrate", zap.Error(err))
	}
	zl.Info("database migrations completed")

	// Seeding never revokes tokens; the cache stays disabled.
	tokenStore := auth.NewTokenStore(nil)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(repository.NewUserRepository(gormDB), jwtService, tokenStore, cfg.Auth.BcryptCost)
	taskService := service.NewTaskService(repository.NewTaskRepository(gormDB))

	created, err := seedDemo(context.Background(), authService, taskService, cfg.Seed, zl)
	if err != nil {
		zl.Fatal("seed failed", zap.Error(err))
	}

	zl.Info("seed completed", zap.Int("tasks_created", created))
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// seedDemo registers the demo user and creates the sample tasks. A user that already
// exists is left untouched and no tasks are added.
func seedDemo(ctx context.Context, authService service.AuthService, taskService service.TaskService, seed config.SeedConfig, logger *zap.Logger) (int, error) {
	user, err := authService.Register(ctx, seed.Name, seed.Email, seed.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
			logger.Info("demo user already registered, skipping", zap.String("email", seed.Email))
			return 0, nil
		}
		return 0, fmt.Errorf("register demo user: %w", err)
	}
	logger.Info("demo user registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	created := 0
	for _, st := range demoTasks {
		var description *string
		if st.Description != "" {
			d := st.Description
			description = &d
		}

		task, err := taskService.CreateTask(ctx, user.ID, st.Title, description)
		if err != nil {
			return created, fmt.Errorf("create task %q: %w", st.Title, err)
		}
		if st.Status != model.TaskStatusPending {
			patch := model.TaskPatch{Status: model.Field[model.TaskStatus]{Set: true, Value: st.Status}}
			if _, err := taskService.UpdateTask(ctx, user.ID, task.ID, patch); err != nil {
				return created, fmt.Errorf("set status of task %d: %w", task.ID, err)
			}
		}
		created++
	}
	return created, nil
}
