package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "taskmanager/internal/errors"
	"taskmanager/internal/model"
	"taskmanager/internal/repository"
)

// TaskService handles task operations scoped to the calling user.
type TaskService interface {
	ListTasks(ctx context.Context, userID uint) ([]model.Task, error)
	CreateTask(ctx context.Context, userID uint, title string, description *string) (*model.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint, patch model.TaskPatch) (*model.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

// ListTasks returns the caller's tasks, never nil.
func (s *taskService) ListTasks(ctx context.Context, userID uint) ([]model.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// CreateTask stores a new pending task owned by userID.
func (s *taskService) CreateTask(ctx context.Context, userID uint, title string, description *string) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
		Status:      model.TaskStatusPending,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// UpdateTask applies patch to one of the caller's tasks.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID uint, patch model.TaskPatch) (*model.Task, error) {
	task, err := s.findOwned(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	patch.Apply(task)
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task %d: %w", taskID, err)
	}
	return task, nil
}

// DeleteTask permanently removes one of the caller's tasks.
func (s *taskService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	task, err := s.findOwned(ctx, userID, taskID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, task); err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, err)
	}
	return nil
}

func (s *taskService) findOwned(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	task, err := s.repo.FindByIDAndOwner(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", taskID, err)
	}
	return task, nil
}
