package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/adapters/cache"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/adapters/repositories"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/api"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/config"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/metrics"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/platform/db"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/ports"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/week.json")
	port := config.Get("PORT", "8080")
	redisAddr := config.Get("REDIS_ADDR", "")
	databaseURL := config.Get("DATABASE_URL", "")
	fuelCostPerKm := config.GetFloat("FUEL_COST_PER_KM", services.DefaultFuelCostPerKm)
	maxIterations := config.GetInt("MAX_ITERATIONS", 0)
	if maxIterations < 0 {
		log.Fatalf("MAX_ITERATIONS must be non-negative, got %d", maxIterations)
	}

	level, err := services.ParseOptimizationLevel(config.Get("OPTIMIZATION_LEVEL", string(services.LevelAdvanced)))
	if err != nil {
		log.Fatal(err)
	}

	repo, closeDB, err := openRepository(databaseURL, dbPath, seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeDB()

	// Plan caching is optional; skip it entirely when Redis is not configured.
	var planCache ports.PlanCache
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		planCache = cache.NewRedisPlanCache(client, 10*time.Minute)
		log.Printf("Plan cache enabled addr=%s", redisAddr)
	}

	metrics.RegisterDefault()

	router := api.NewRouter(api.RouterConfig{
		Collections:          repo,
		Depots:               repo,
		Prices:               repo,
		PlanCache:            planCache,
		DefaultLevel:         level,
		DefaultMaxIterations: maxIterations,
		FuelCostPerKm:        fuelCostPerKm,
	})

	log.Printf("Server listening addr=:%s level=%s", port, level)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openRepository picks the record store: PostgreSQL when DATABASE_URL is
// set (schema managed by dbtool), SQLite otherwise (schema and seed
// applied on startup for local runs).
func openRepository(databaseURL, dbPath, seedPath string) (repositories.WeekRepository, func(), error) {
	if databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("Using PostgreSQL record store")
		return repositories.NewSQLWeekRepository(pg), func() { pg.Close() }, nil
	}

	sqlite, err := openDB(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := initAndSeed(sqlite, seedPath); err != nil {
		sqlite.Close()
		return nil, nil, err
	}
	return repositories.NewSqliteWeekRepository(sqlite), func() { sqlite.Close() }, nil
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
