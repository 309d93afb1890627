package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"todo_api/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	apply := flag.Bool("apply", false, "apply pending migrations")
	flag.Parse()

	_ = godotenv.Load()

	if !*apply {
		names, err := db.Migrations()
		if err != nil {
			log.Fatalf("list migrations: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	fmt.Println("migrations applied")
}
