package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todo_api/internal/config"
	"todo_api/internal/db"
	httpServer "todo_api/internal/http"
	"todo_api/internal/http/handlers"
	"todo_api/internal/http/middleware"
	"todo_api/internal/kv"
	"todo_api/internal/logger"
	"todo_api/internal/repository"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	dbPool := db.Connect(cfg.DatabaseURL)
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(context.Background(), dbPool); err != nil {
			logger.Fatal("migrations failed", "error", err)
		}
	}

	redisClient := kv.Connect(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if redisClient != nil {
		defer redisClient.Close()
	}
	middleware.InitRedisRateLimiter(redisClient)

	users := repository.NewUserRepository(dbPool)
	lists := repository.NewTodoListRepository(dbPool)
	tasks := repository.NewTaskRepository(dbPool)
	audits := repository.NewAuditRepository(dbPool)

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	ownership := service.NewOwnership(lists, tasks)
	h := handlers.NewHandler(
		service.NewAuthService(users, tokens, service.NewRevocationStore(redisClient), cfg.BcryptCost),
		service.NewTodoListService(lists, ownership),
		service.NewTaskService(tasks, ownership),
		service.NewAuditService(audits),
	)
	health := handlers.NewHealthHandler(dbPool, handlers.RedisPinger(redisClient), cfg.AppVersion)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	// CORS for browser clients on another origin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	httpServer.RegisterRoutes(r, h, health, httpServer.RouteConfig{
		AuthRateLimit:  cfg.AuthRateLimit,
		AuthRateWindow: cfg.AuthRateWindow,
		APIRateLimit:   cfg.APIRateLimit,
		APIRateWindow:  cfg.APIRateWindow,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "version", cfg.AppVersion)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
