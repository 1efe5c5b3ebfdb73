package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskmanager/internal/model"
)

var taskColumns = []string{"id", "title", "description", "status", "created_at", "user_id"}

func TestTaskRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO `tasks` (`title`,`description`,`status`,`created_at`,`user_id`) VALUES (?,?,?,?,?)")).
		WithArgs("buy milk", nil, "pending", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(1, 1))

	task := &model.Task{Title: "buy milk", Status: model.TaskStatusPending, UserID: 7}
	require.NoError(t, repo.Create(context.Background(), task))
	assert.Equal(t, uint(1), task.ID)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskRepository_FindByIDAndOwner(t *testing.T) {
	query := regexp.QuoteMeta("SELECT * FROM `tasks` WHERE id = ? AND user_id = ? ORDER BY `tasks`.`id` LIMIT ?")
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("owned task", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(3, 7, 1).
			WillReturnRows(sqlmock.NewRows(taskColumns).
				AddRow(3, "buy milk", "2 litres", "in_progress", created, 7))

		task, err := NewTaskRepository(db).FindByIDAndOwner(context.Background(), 3, 7)
		require.NoError(t, err)
		assert.Equal(t, uint(3), task.ID)
		assert.Equal(t, model.TaskStatusInProgress, task.Status)
		require.NotNil(t, task.Description)
		assert.Equal(t, "2 litres", *task.Description)
		assert.Equal(t, created, task.CreatedAt)
	})

	t.Run("other owner or missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(3, 8, 1).
			WillReturnRows(sqlmock.NewRows(taskColumns))

		task, err := NewTaskRepository(db).FindByIDAndOwner(context.Background(), 3, 8)
		assert.Nil(t, task)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestTaskRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tasks` WHERE user_id = ? ORDER BY id")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(taskColumns).
			AddRow(1, "first", nil, "pending", time.Now(), 7).
			AddRow(2, "second", nil, "done", time.Now(), 7))

	tasks, err := NewTaskRepository(db).ListByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Nil(t, tasks[0].Description)
	assert.Equal(t, model.TaskStatusDone, tasks[1].Status)
}

func TestTaskRepository_ListByOwner_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tasks` WHERE user_id = ? ORDER BY id")).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows(taskColumns))

	tasks, err := NewTaskRepository(db).ListByOwner(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestTaskRepository_Update_WritesMutableColumnsOnly(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `tasks` SET `title`=?,`description`=?,`status`=? WHERE `id` = ?")).
		WithArgs("buy bread", "wholegrain", "done", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	desc := "wholegrain"
	task := &model.Task{
		ID:          3,
		Title:       "buy bread",
		Description: &desc,
		Status:      model.TaskStatusDone,
		UserID:      7,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, NewTaskRepository(db).Update(context.Background(), task))
}

func TestTaskRepository_Update_ClearsDescription(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE `tasks` SET `title`=?,`description`=?,`status`=? WHERE `id` = ?")).
		WithArgs("buy milk", nil, "pending", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	task := &model.Task{ID: 3, Title: "buy milk", Status: model.TaskStatusPending, UserID: 7}
	require.NoError(t, NewTaskRepository(db).Update(context.Background(), task))
}

func TestTaskRepository_Delete_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks` WHERE id = ? AND user_id = ?")).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewTaskRepository(db).Delete(context.Background(), &model.Task{ID: 3, UserID: 7}))
}

func TestTaskRepository_Delete_PropagatesError(t *testing.T) {
	db, mock := newMockDB(t)
	dbErr := errors.New("connection reset")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `tasks`")).
		WillReturnError(dbErr)

	err := NewTaskRepository(db).Delete(context.Background(), &model.Task{ID: 3, UserID: 7})
	assert.ErrorIs(t, err, dbErr)
}
