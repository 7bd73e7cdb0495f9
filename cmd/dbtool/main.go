package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/adapters/repositories"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/config"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/platform/db"
)

// dbtool initializes the shared PostgreSQL database and seeds it with
// the weekly schedule. The server itself runs against SQLite by default;
// this tool serves deployments that point repositories at postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/week.json")
	if err := initAndSeed(pg, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(pg *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchemaPostgres(pg); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSONPostgres(pg, seedPath); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
