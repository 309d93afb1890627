package handlers

import (
	"errors"
	"net/http"

	"todo_api/internal/http/middleware"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoListRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}

// ListTodoLists GET /todo
func (h *Handler) ListTodoLists(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	lists, err := h.Lists.List(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err, "list todo lists failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Todo lists listed successfully", lists)
}

// CreateTodoList POST /todo
func (h *Handler) CreateTodoList(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req TodoListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.Lists.Create(c.Request.Context(), userID, req.Name)
	if err != nil {
		h.todoListError(c, err, "create todo list failed")
		return
	}
	respondSuccess(c, http.StatusCreated, "Todo list created successfully", list)
}

// GetTodoList GET /todo/:id
func (h *Handler) GetTodoList(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		invalidSelection(c, "id", "id")
		return
	}

	list, err := h.Lists.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.todoListError(c, err, "get todo list failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Todo list retrieved successfully", list)
}

// UpdateTodoList PUT /todo/:id
func (h *Handler) UpdateTodoList(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		invalidSelection(c, "id", "id")
		return
	}

	var req TodoListRequest
	if !bindJSON(c, &req) {
		return
	}

	list, err := h.Lists.Rename(c.Request.Context(), userID, id, req.Name)
	if err != nil {
		h.todoListError(c, err, "update todo list failed")
		return
	}
	respondSuccess(c, http.StatusOK, "Todo list updated successfully", list)
}

// DeleteTodoList DELETE /todo/:id
func (h *Handler) DeleteTodoList(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	id, ok := pathID(c, "id")
	if !ok {
		invalidSelection(c, "id", "id")
		return
	}

	if err := h.Lists.Delete(c.Request.Context(), userID, id); err != nil {
		h.todoListError(c, err, "delete todo list failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) todoListError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrTodoListNotFound):
		invalidSelection(c, "id", "id")
	case errors.Is(err, service.ErrTodoListNameTaken):
		respondValidation(c, http.StatusUnprocessableEntity, FieldErrors{
			"name": {"The name has already been taken."},
		})
	default:
		respondInternal(c, err, msg)
	}
}
