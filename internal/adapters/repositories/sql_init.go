package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the PostgreSQL schema. Placeholder syntax and upserts differ
// from SQLite, so the postgres path has its own statements.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS collection_points (
			name TEXT NOT NULL,
			day TEXT NOT NULL,
			material TEXT NOT NULL,
			weight_kg DOUBLE PRECISION NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (day, name)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS depots (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS material_prices (
			material TEXT PRIMARY KEY,
			price_per_kg DOUBLE PRECISION NOT NULL
		);
		`,
		`
		CREATE INDEX IF NOT EXISTS idx_collection_points_day
		ON collection_points(day);
		`,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the PostgreSQL database with the weekly schedule from a JSON
// file. Shares seed parsing and validation with the SQLite path.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed week: read %q: %w", jsonPath, err)
	}

	var seed WeekSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("seed week: parse json: %w", err)
	}

	if err := validateSeed(&seed); err != nil {
		return fmt.Errorf("seed week: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed week: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	pointQuery := `
	INSERT INTO collection_points (name, day, material, weight_kg, lat, lon)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (day, name) DO UPDATE SET
		material = EXCLUDED.material,
		weight_kg = EXCLUDED.weight_kg,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`
	for _, p := range seed.CollectionPoints {
		if _, err := tx.Exec(pointQuery, p.Name, p.Day, p.Material, p.WeightKg, p.Lat, p.Lon); err != nil {
			return fmt.Errorf("seed week: insert collection point %q: %w", p.Name, err)
		}
	}

	depotQuery := `
	INSERT INTO depots (position, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (position) DO UPDATE SET
		name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`
	for i, d := range seed.Depots {
		if _, err := tx.Exec(depotQuery, i+1, d.Name, d.Lat, d.Lon); err != nil {
			return fmt.Errorf("seed week: insert depot %q: %w", d.Name, err)
		}
	}

	priceQuery := `
	INSERT INTO material_prices (material, price_per_kg)
	VALUES ($1, $2)
	ON CONFLICT (material) DO UPDATE SET
		price_per_kg = EXCLUDED.price_per_kg;
	`
	for _, m := range seed.MaterialPrices {
		if _, err := tx.Exec(priceQuery, m.Material, m.PricePerKg); err != nil {
			return fmt.Errorf("seed week: insert price for %q: %w", m.Material, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed week: commit tx: %w", err)
	}

	return nil
}
