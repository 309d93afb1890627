package http

import (
	"time"

	"todo_api/internal/http/handlers"
	"todo_api/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteConfig holds the rate limits applied to the API groups.
type RouteConfig struct {
	AuthRateLimit  int
	AuthRateWindow time.Duration
	APIRateLimit   int
	APIRateWindow  time.Duration
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, health *handlers.HealthHandler, cfg RouteConfig) {
	// Health checks (no rate limiting)
	r.GET("/health", health.Health)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.IPRateLimit("api", cfg.APIRateLimit, cfg.APIRateWindow))

	authRL := middleware.IPRateLimit("auth", cfg.AuthRateLimit, cfg.AuthRateWindow)
	jwt := middleware.JWT(h.Auth)

	auth := api.Group("/auth")
	{
		auth.POST("", authRL, h.Login)
		auth.POST("/create", authRL, h.Register)
		auth.POST("/logout", jwt, h.Logout)
		auth.POST("/refresh", jwt, h.Refresh)
		auth.GET("/user", jwt, h.User)
		auth.GET("/activity", jwt, h.Activity)
	}

	todo := api.Group("/todo")
	todo.Use(jwt, middleware.UserRateLimit("todo", cfg.APIRateLimit, cfg.APIRateWindow))
	{
		todo.GET("", h.ListTodoLists)
		todo.POST("", h.CreateTodoList)
		todo.GET("/:id", h.GetTodoList)
		todo.PUT("/:id", h.UpdateTodoList)
		todo.DELETE("/:id", h.DeleteTodoList)

		todo.GET("/:id/tasks", h.ListTasks)
		todo.POST("/:id/tasks", h.CreateTask)
		todo.GET("/:id/tasks/:task_id", h.GetTask)
		todo.PUT("/:id/tasks/:task_id", h.UpdateTask)
		todo.DELETE("/:id/tasks/:task_id", h.DeleteTask)
	}
}
