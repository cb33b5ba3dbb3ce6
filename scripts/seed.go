// Seed inserts sample users and subscribers for local development.
//
// Usage:
//
//	go run ./scripts -database-url postgres://... -users 5 -subscribers 3
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		users       = flag.Int("users", 3, "Number of sample users to insert")
		subscribers = flag.Int("subscribers", 3, "Number of sample subscribers to insert")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		fmt.Fprintln(os.Stderr, "ping database:", err)
		os.Exit(1)
	}

	for i := 0; i < *users; i++ {
		id := uuid.New().String()
		name := fmt.Sprintf("user-%02d", i+1)
		email := fmt.Sprintf("%s@listkeeper.local", name)

		_, err := db.Exec(
			`INSERT INTO users (id, name, email, created_at) VALUES ($1, $2, $3, $4)`,
			id, name, email, time.Now().UTC(),
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "insert user:", err)
			os.Exit(1)
		}
		fmt.Printf("user %s %s\n", id, email)
	}

	for i := 0; i < *subscribers; i++ {
		id := uuid.New().String()
		name := fmt.Sprintf("subscriber-%02d", i+1)
		email := fmt.Sprintf("%s@listkeeper.local", name)

		_, err := db.Exec(
			`INSERT INTO subscriptions (id, email, name, subscribed_at) VALUES ($1, $2, $3, $4)`,
			id, email, name, time.Now().UTC(),
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, "insert subscriber:", err)
			os.Exit(1)
		}
		fmt.Printf("subscriber %s %s\n", id, email)
	}
}
