package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

// componentColumns kutilayotgan CSV ustunlar tartibi
var componentColumns = []string{
	"category", "id", "name", "tier", "socket", "cores", "tdp",
	"vram_gb", "memory_type", "capacity_gb", "speed_mhz",
	"interface", "form_factor", "wattage", "form_factors",
}

// ParseComponentsFile komponentlar CSV faylini o'qiydi
func ParseComponentsFile(path string) ([]entity.Component, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("components csv: %w", err)
	}
	defer f.Close()
	return ParseComponentsCSV(f)
}

// ParseComponentsCSV komponentlarni CSV dan o'qiydi. Yaroqsiz qator
// darhol xato qaytaradi (fail fast), qator raqami xatoda ko'rsatiladi.
func ParseComponentsCSV(r io.Reader) ([]entity.Component, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("components csv: header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var components []entity.Component
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("components csv: line %d: %w", line, err)
		}

		c, err := parseComponentRecord(record)
		if err != nil {
			return nil, fmt.Errorf("components csv: line %d: %w", line, err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("components csv: line %d: %w", line, err)
		}
		components = append(components, c)
	}
	return components, nil
}

func checkHeader(header []string) error {
	if len(header) != len(componentColumns) {
		return fmt.Errorf("components csv: expected %d columns, got %d", len(componentColumns), len(header))
	}
	for i, want := range componentColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return fmt.Errorf("components csv: column %d: expected %q, got %q", i+1, want, header[i])
		}
	}
	return nil
}

func parseComponentRecord(record []string) (entity.Component, error) {
	get := func(i int) string { return strings.TrimSpace(record[i]) }

	c := entity.Component{
		Category:   entity.Category(get(0)),
		ID:         get(1),
		Name:       get(2),
		Socket:     get(4),
		MemoryType: get(8),
		FormFactor: get(12),
	}

	var err error
	if c.Tier, err = entity.ParseTier(get(3)); err != nil {
		return c, err
	}

	ints := map[string]struct {
		idx int
		dst *int
	}{
		"cores":       {5, &c.Cores},
		"tdp":         {6, &c.TDP},
		"vram_gb":     {7, &c.VRAMGB},
		"capacity_gb": {9, &c.CapacityGB},
		"speed_mhz":   {10, &c.SpeedMHz},
		"wattage":     {13, &c.Wattage},
	}
	for name, field := range ints {
		raw := get(field.idx)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c, fmt.Errorf("invalid %s %q", name, raw)
		}
		*field.dst = n
	}

	if raw := get(11); raw != "" {
		if c.Interface, err = entity.ParseStorageInterface(raw); err != nil {
			return c, err
		}
	}

	if raw := get(14); raw != "" {
		for _, ff := range strings.Split(raw, ";") {
			if trimmed := strings.TrimSpace(ff); trimmed != "" {
				c.FormFactors = append(c.FormFactors, trimmed)
			}
		}
	}

	return c, nil
}
