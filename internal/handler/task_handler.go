package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskmanager/internal/errors"
	"taskmanager/internal/model"
	"taskmanager/internal/service"
)

// TaskHandler handles task endpoints. Every route acts on the caller's tasks only.
type TaskHandler struct {
	taskService service.TaskService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskRequest represents a task creation request. Any status in the payload is
// ignored; new tasks always start pending.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

// UpdateTaskRequest documents the partial update body; every field is optional.
type UpdateTaskRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      model.TaskStatus `json:"status" enums:"pending,in_progress,done"`
}

// ListTasks godoc
// @Summary List the caller's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Task
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), userID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task data"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), userID, req.Title, req.Description)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// UpdateTask godoc
// @Summary Update a task
// @Description Applies the fields present in the body. Unknown status values are ignored.
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} model.Task
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	var patch model.TaskPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Detail: "invalid request body",
			Code:   "INVALID_REQUEST",
		})
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), userID, taskID, patch)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	taskID, err := taskIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), userID, taskID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Msg: "Task deleted"})
}
