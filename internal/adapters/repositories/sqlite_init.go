package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createCollectionPointsQuery := `
	CREATE TABLE IF NOT EXISTS collection_points (
		name TEXT NOT NULL,
		day TEXT NOT NULL,
		material TEXT NOT NULL,
		weight_kg REAL NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		PRIMARY KEY (day, name)
	);
	`

	createDepotsQuery := `
	CREATE TABLE IF NOT EXISTS depots (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createMaterialPricesQuery := `
	CREATE TABLE IF NOT EXISTS material_prices (
		material TEXT PRIMARY KEY,
		price_per_kg REAL NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_collection_points_day
	ON collection_points(day);
	`

	statements := []string{
		createCollectionPointsQuery,
		createDepotsQuery,
		createMaterialPricesQuery,
		createIndexQuery,
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

type CollectionPointSeed struct {
	Name     string  `json:"name"`
	Day      string  `json:"day"`
	Material string  `json:"material"`
	WeightKg float64 `json:"weight_kg"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

type DepotSeed struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type MaterialPriceSeed struct {
	Material   string  `json:"material"`
	PricePerKg float64 `json:"price_per_kg"`
}

type WeekSeed struct {
	CollectionPoints []CollectionPointSeed `json:"collection_points"`
	Depots           []DepotSeed           `json:"depots"`
	MaterialPrices   []MaterialPriceSeed   `json:"material_prices"`
}

// Populate the database with the weekly schedule from a JSON file.
// Basic shape validation happens here (non-empty labels, non-negative
// weights/prices); coordinate-range checks are the planner's job.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
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

	pointStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO collection_points (
		name, day, material, weight_kg, lat, lon
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed week: prepare collection point insert: %w", err)
	}
	defer pointStmt.Close()

	for _, p := range seed.CollectionPoints {
		if _, err := pointStmt.Exec(p.Name, p.Day, p.Material, p.WeightKg, p.Lat, p.Lon); err != nil {
			return fmt.Errorf("seed week: insert collection point %q: %w", p.Name, err)
		}
	}

	depotStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO depots (position, name, lat, lon)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed week: prepare depot insert: %w", err)
	}
	defer depotStmt.Close()

	for i, d := range seed.Depots {
		if _, err := depotStmt.Exec(i+1, d.Name, d.Lat, d.Lon); err != nil {
			return fmt.Errorf("seed week: insert depot %q: %w", d.Name, err)
		}
	}

	priceStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO material_prices (material, price_per_kg)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed week: prepare price insert: %w", err)
	}
	defer priceStmt.Close()

	for _, m := range seed.MaterialPrices {
		if _, err := priceStmt.Exec(m.Material, m.PricePerKg); err != nil {
			return fmt.Errorf("seed week: insert price for %q: %w", m.Material, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed week: commit tx: %w", err)
	}

	return nil
}

func validateSeed(seed *WeekSeed) error {
	for i, p := range seed.CollectionPoints {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("collection point at index %d: name cannot be empty", i)
		}
		if strings.TrimSpace(p.Day) == "" {
			return fmt.Errorf("collection point %q: day cannot be empty", p.Name)
		}
		if strings.TrimSpace(p.Material) == "" {
			return fmt.Errorf("collection point %q: material cannot be empty", p.Name)
		}
		if p.WeightKg < 0 {
			return fmt.Errorf("collection point %q: weight cannot be negative", p.Name)
		}
	}

	for i, d := range seed.Depots {
		if strings.TrimSpace(d.Name) == "" {
			return fmt.Errorf("depot at index %d: name cannot be empty", i)
		}
	}

	for i, m := range seed.MaterialPrices {
		if strings.TrimSpace(m.Material) == "" {
			return fmt.Errorf("material price at index %d: material cannot be empty", i)
		}
		if m.PricePerKg < 0 {
			return fmt.Errorf("material %q: price cannot be negative", m.Material)
		}
	}

	return nil
}
