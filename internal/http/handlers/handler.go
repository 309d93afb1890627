package handlers

import (
	"todo_api/internal/service"
)

type Handler struct {
	Auth  *service.AuthService
	Lists *service.TodoListService
	Tasks *service.TaskService
	Audit *service.AuditService
}

func NewHandler(auth *service.AuthService, lists *service.TodoListService, tasks *service.TaskService, audit *service.AuditService) *Handler {
	return &Handler{
		Auth:  auth,
		Lists: lists,
		Tasks: tasks,
		Audit: audit,
	}
}
