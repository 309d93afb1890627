package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"todo_api/internal/http/middleware"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
)

// nullableString tells an explicit JSON null apart from an absent field.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	return json.Unmarshal(data, &n.Value)
}

type TaskRequest struct {
	Title       string         `json:"title" binding:"required,notblank,max=255"`
	Description nullableString `json:"description"`
	Completed   *bool          `json:"completed"`
}

func (r TaskRequest) input() service.TaskInput {
	return service.TaskInput{
		Title:            r.Title,
		Description:      r.Description.Value,
		ClearDescription: r.Description.Set && r.Description.Value == nil,
		Completed:        r.Completed,
	}
}

// ListTasks GET /todo/:id/tasks
func (h *Handler) ListTasks(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	listID, ok := pathID(c, "id")
	if !ok {
		invalidSelection(c, "todo_list_id", "todo list id")
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), userID, listID)
	if err != nil {
		h.taskError(c, err, "list tasks failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Tasks listed successfully", tasks)
}

// CreateTask POST /todo/:id/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	listID, ok := pathID(c, "id")
	if !ok {
		invalidSelection(c, "todo_list_id", "todo list id")
		return
	}

	var req TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.Tasks.Create(c.Request.Context(), userID, listID, req.input())
	if err != nil {
		h.taskError(c, err, "create task failed")
		return
	}
	respondSuccess(c, http.StatusCreated, "Task created successfully", task)
}

// GetTask GET /todo/:id/tasks/:task_id
func (h *Handler) GetTask(c *gin.Context) {
	userID, listID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	task, err := h.Tasks.Get(c.Request.Context(), userID, listID, taskID)
	if err != nil {
		h.taskError(c, err, "get task failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Task fetched successfully", task)
}

// UpdateTask PUT /todo/:id/tasks/:task_id
func (h *Handler) UpdateTask(c *gin.Context) {
	userID, listID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	var req TaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), userID, listID, taskID, req.input())
	if err != nil {
		h.taskError(c, err, "update task failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Task updated successfully", task)
}

// DeleteTask DELETE /todo/:id/tasks/:task_id
func (h *Handler) DeleteTask(c *gin.Context) {
	userID, listID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), userID, listID, taskID); err != nil {
		h.taskError(c, err, "delete task failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func taskPath(c *gin.Context) (userID, listID, taskID int64, ok bool) {
	userID, _ = middleware.UserID(c)
	if listID, ok = pathID(c, "id"); !ok {
		invalidSelection(c, "todo_list_id", "todo list id")
		return
	}
	if taskID, ok = pathID(c, "task_id"); !ok {
		invalidSelection(c, "id", "id")
		return
	}
	return
}

func (h *Handler) taskError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrTodoListNotFound):
		invalidSelection(c, "todo_list_id", "todo list id")
	case errors.Is(err, service.ErrTaskNotFound):
		invalidSelection(c, "id", "id")
	default:
		respondInternal(c, err, msg)
	}
}
