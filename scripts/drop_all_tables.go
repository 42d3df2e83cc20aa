// Command drop_all_tables drops this environment's tables so the next
// server start recreates them from scratch. Dev tooling; reads the same
// environment variables as the server.
//
//	go run scripts/drop_all_tables.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	prefix := os.Getenv("TABLE_PREFIX")
	if prefix == "" {
		prefix = env + "_"
	}

	if env == "prod" {
		log.Fatal("refusing to drop production tables")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer db.Close()

	// Children first so the drops work even without CASCADE.
	tables := []string{"feedback", "refinements", "sections", "projects"}
	for _, table := range tables {
		name := prefix + table
		if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", name)); err != nil {
			log.Fatalf("Failed to drop %s: %v", name, err)
		}
		fmt.Printf("dropped %s\n", name)
	}
}
