package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/domain"
	"github.com/ZinhleMM/waste-flow-optimisation-prototype/internal/platform/obs"
)

// SQLWeekRepository is the PostgreSQL implementation of the record
// repository ports, used when the service runs against a shared database
// instead of the local SQLite file.
type SQLWeekRepository struct{ DB *sql.DB }

func NewSQLWeekRepository(db *sql.DB) *SQLWeekRepository {
	return &SQLWeekRepository{DB: db}
}

// Return all collection points in the weekly schedule.
func (s *SQLWeekRepository) ListCollectionPoints(ctx context.Context) (_ []domain.CollectionPoint, err error) {
	defer obs.Time(ctx, "repo.ListCollectionPoints")(&err)

	if s.DB == nil {
		return nil, errors.New("week repository: db is nil")
	}

	q := `
	SELECT name, day, material, weight_kg, lat, lon
	FROM collection_points
	ORDER BY
		CASE day
			WHEN 'Monday' THEN 1
			WHEN 'Tuesday' THEN 2
			WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4
			WHEN 'Friday' THEN 5
			WHEN 'Saturday' THEN 6
			WHEN 'Sunday' THEN 7
			ELSE 8
		END,
		name;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list collection points: query collection_points table: %w", err)
	}
	defer rows.Close()

	points := make([]domain.CollectionPoint, 0, 64)
	for rows.Next() {
		var p domain.CollectionPoint
		if err := rows.Scan(&p.Name, &p.Day, &p.Material, &p.WeightKg, &p.Coords.Lat, &p.Coords.Lon); err != nil {
			return nil, fmt.Errorf("list collection points: scan row: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list collection points: row iteration: %w", err)
	}

	return points, nil
}

// Return all depot candidates in their configured order.
func (s *SQLWeekRepository) ListDepots(ctx context.Context) (_ []domain.Depot, err error) {
	defer obs.Time(ctx, "repo.ListDepots")(&err)

	if s.DB == nil {
		return nil, errors.New("week repository: db is nil")
	}

	q := `
	SELECT name, lat, lon
	FROM depots
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list depots: query depots table: %w", err)
	}
	defer rows.Close()

	depots := make([]domain.Depot, 0, 8)
	for rows.Next() {
		var d domain.Depot
		if err := rows.Scan(&d.Name, &d.Coords.Lat, &d.Coords.Lon); err != nil {
			return nil, fmt.Errorf("list depots: scan row: %w", err)
		}
		depots = append(depots, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list depots: row iteration: %w", err)
	}

	return depots, nil
}

// Return the material price table.
func (s *SQLWeekRepository) ListMaterialPrices(ctx context.Context) (_ domain.PriceTable, err error) {
	defer obs.Time(ctx, "repo.ListMaterialPrices")(&err)

	if s.DB == nil {
		return nil, errors.New("week repository: db is nil")
	}

	q := `
	SELECT material, price_per_kg
	FROM material_prices;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list material prices: query material_prices table: %w", err)
	}
	defer rows.Close()

	prices := make(domain.PriceTable)
	for rows.Next() {
		var material string
		var price float64
		if err := rows.Scan(&material, &price); err != nil {
			return nil, fmt.Errorf("list material prices: scan row: %w", err)
		}
		prices[material] = price
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list material prices: row iteration: %w", err)
	}

	return prices, nil
}
