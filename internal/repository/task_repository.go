package repository

import (
	"context"

	"gorm.io/gorm"

	"taskmanager/internal/model"
)

// TaskRepository defines task persistence operations. Lookups that take an owner only
// match tasks belonging to that user.
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Task, error)
	ListByOwner(ctx context.Context, userID uint) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	Delete(ctx context.Context, task *model.Task) error
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task record.
func (r *taskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByIDAndOwner returns gorm.ErrRecordNotFound when the task does not exist or
// belongs to another user.
func (r *taskRepository) FindByIDAndOwner(ctx context.Context, id, userID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner lists a user's tasks in insertion order.
func (r *taskRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Task, error) {
	tasks := []model.Task{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update writes the mutable columns only. Owner and creation time are never touched.
func (r *taskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).
		Model(task).
		Select("title", "description", "status").
		Updates(task).Error
}

// Delete removes the row permanently. The owner is part of the condition.
func (r *taskRepository) Delete(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).
		Delete(&model.Task{}, "id = ? AND user_id = ?", task.ID, task.UserID).Error
}
