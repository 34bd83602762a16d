package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

// LoadPostgresCatalog katalogni Postgres dan bir marta o'qiydi.
// Faol ulanish saqlanmaydi: natija in-memory katalogga yuklanadi.
func LoadPostgresCatalog(ctx context.Context, dsn string) ([]entity.Component, []entity.Laptop, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("postgres ping: %w", err)
	}

	components, err := loadComponents(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	laptops, err := loadLaptops(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return components, laptops, nil
}

func loadComponents(ctx context.Context, db *sql.DB) ([]entity.Component, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, category, name, COALESCE(tier, ''),
		       COALESCE(socket, ''), COALESCE(cores, 0), COALESCE(tdp, 0),
		       COALESCE(vram_gb, 0), COALESCE(memory_type, ''),
		       COALESCE(capacity_gb, 0), COALESCE(speed_mhz, 0),
		       COALESCE(interface, ''), COALESCE(form_factor, ''),
		       COALESCE(wattage, 0), COALESCE(form_factors, '')
		FROM components ORDER BY category, id`)
	if err != nil {
		return nil, fmt.Errorf("postgres components query: %w", err)
	}
	defer rows.Close()

	var components []entity.Component
	for rows.Next() {
		var (
			c                     entity.Component
			rawTier, rawInterface string
			rawCategory           string
			rawFormFactors        string
		)
		if err := rows.Scan(&c.ID, &rawCategory, &c.Name, &rawTier,
			&c.Socket, &c.Cores, &c.TDP, &c.VRAMGB, &c.MemoryType,
			&c.CapacityGB, &c.SpeedMHz, &rawInterface, &c.FormFactor,
			&c.Wattage, &rawFormFactors); err != nil {
			return nil, fmt.Errorf("postgres components scan: %w", err)
		}
		c.Category = entity.Category(rawCategory)
		if c.Tier, err = entity.ParseTier(rawTier); err != nil {
			return nil, fmt.Errorf("postgres component %s: %w", c.ID, err)
		}
		if c.Category == entity.CategoryStorage {
			if c.Interface, err = entity.ParseStorageInterface(rawInterface); err != nil {
				return nil, fmt.Errorf("postgres component %s: %w", c.ID, err)
			}
		}
		if rawFormFactors != "" {
			c.FormFactors = splitList(rawFormFactors)
		}
		components = append(components, c)
	}
	return components, rows.Err()
}

func loadLaptops(ctx context.Context, db *sql.DB) ([]entity.Laptop, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, COALESCE(specs, ''), COALESCE(price, 0),
		       COALESCE(major, ''), COALESCE(activities, ''), COALESCE(programs, '')
		FROM laptops ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("postgres laptops query: %w", err)
	}
	defer rows.Close()

	var laptops []entity.Laptop
	for rows.Next() {
		var (
			l           entity.Laptop
			rawPrograms string
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Specs, &l.Price,
			&l.Major, &l.Activities, &rawPrograms); err != nil {
			return nil, fmt.Errorf("postgres laptops scan: %w", err)
		}
		if rawPrograms != "" {
			l.Programs = splitList(rawPrograms)
		}
		l.BatteryLife = entity.ClassifyBatteryLife(l.Name, l.Specs)
		laptops = append(laptops, l)
	}
	return laptops, rows.Err()
}

// splitList ";" bilan ajratilgan ro'yxatni o'qiydi
func splitList(raw string) []string {
	parts := strings.Split(raw, ";")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
