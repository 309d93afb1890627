package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"todo_api/internal/config"
	"todo_api/internal/db"
	"todo_api/internal/repository"
	"todo_api/internal/service"
)

func main() {
	name := flag.String("name", "Tester", "user name")
	email := flag.String("email", "tester@example.com", "user email")
	password := flag.String("password", "password123", "user password")
	flag.Parse()

	// expects DATABASE_URL and JWT_SECRET
	cfg := config.Load()

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	auth := service.NewAuthService(repository.NewUserRepository(pool), tokens, service.NewMemoryRevocationStore(), cfg.BcryptCost)
	ctx := context.Background()

	u, err := auth.Register(ctx, service.RegisterInput{Name: *name, Email: *email, Password: *password})
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		log.Printf("user already exists email=%s\n", *email)
	case err != nil:
		log.Fatalf("create user failed: %v", err)
	default:
		log.Printf("user created id=%d\n", u.ID)
	}

	u, token, err := auth.Login(ctx, *email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	log.Printf("fetched user id=%d name=%s created_at=%v\n", u.ID, u.Name, u.CreatedAt)
	log.Printf("token=%s\n", token.AccessToken)
}
