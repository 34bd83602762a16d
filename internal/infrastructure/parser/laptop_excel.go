package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

// Laptop dataseti ustunlari (talabalar so'rovnomasi formati).
// Taqqoslash uchun kichik harflarda saqlanadi.
var laptopColumns = []string{
	"model_name", "processor_name", "ram(gb)", "graphics",
	"screen_size(inches)", "resolution (pixels)", "price",
}

// ParseLaptopsFile laptop XLSX faylini o'qiydi
func ParseLaptopsFile(path string) ([]entity.Laptop, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("laptops xlsx: %w", err)
	}
	defer f.Close()
	return parseLaptopSheet(f)
}

// ParseLaptopsReader laptop XLSX ni readerdan o'qiydi
func ParseLaptopsReader(r io.Reader) ([]entity.Laptop, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("laptops xlsx: %w", err)
	}
	defer f.Close()
	return parseLaptopSheet(f)
}

func parseLaptopSheet(f *excelize.File) ([]entity.Laptop, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("laptops xlsx: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("laptops xlsx: empty sheet %q", sheet)
	}

	colIdx, err := mapLaptopColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var laptops []entity.Laptop
	for i, row := range rows[1:] {
		l, err := parseLaptopRow(row, colIdx)
		if err != nil {
			return nil, fmt.Errorf("laptops xlsx: row %d: %w", i+2, err)
		}
		if l == nil {
			continue // bo'sh qator
		}
		laptops = append(laptops, *l)
	}
	return laptops, nil
}

func mapLaptopColumns(header []string) (map[string]int, error) {
	colIdx := make(map[string]int)
	for i, h := range header {
		colIdx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range laptopColumns[:4] {
		if _, ok := colIdx[required]; !ok {
			return nil, fmt.Errorf("laptops xlsx: missing column %q", required)
		}
	}
	return colIdx, nil
}

func parseLaptopRow(row []string, colIdx map[string]int) (*entity.Laptop, error) {
	cell := func(name string) string {
		i, ok := colIdx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell("model_name")
	if missingValue(name) {
		return nil, nil
	}

	cpu := cell("processor_name")
	ramGB := 0
	if raw := cell("ram(gb)"); !missingValue(raw) {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ram %q", raw)
		}
		ramGB = n
	}

	// Datasetda graphics ko'pincha bo'sh: protsessor brendidan to'ldiramiz
	gpu := cell("graphics")
	if missingValue(gpu) {
		gpu = integratedGraphicsFor(cpu)
	}

	screen := cell("screen_size(inches)")
	if missingValue(screen) {
		screen = "15.6"
	}
	resolution := cell("resolution (pixels)")
	if missingValue(resolution) {
		resolution = "1920 x 1080"
	}

	price := 0.0
	if raw := cell("price"); !missingValue(raw) {
		p, err := strconv.ParseFloat(strings.TrimPrefix(raw, "$"), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q", raw)
		}
		price = p
	}

	specs := fmt.Sprintf("%s, %dGB RAM, %s, %s\" %s", cpu, ramGB, gpu, screen, resolution)
	major, activities, programs := inferSurveyTags(ramGB, gpu)

	return &entity.Laptop{
		ID:          uuid.NewString(),
		Name:        name,
		Specs:       specs,
		BatteryLife: entity.ClassifyBatteryLife(name, specs),
		Price:       price,
		Major:       major,
		Activities:  activities,
		Programs:    programs,
	}, nil
}

// missingValue datasetdagi "yo'q" belgilarini tanib oladi
func missingValue(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "missing", "null", "none", "nan":
		return true
	default:
		return false
	}
}

func integratedGraphicsFor(cpu string) string {
	proc := strings.ToLower(cpu)
	switch {
	case strings.Contains(proc, "intel"):
		return "Intel Integrated Graphics"
	case strings.Contains(proc, "amd"), strings.Contains(proc, "ryzen"):
		return "AMD Radeon Graphics"
	default:
		return "Integrated Graphics"
	}
}

// inferSurveyTags so'rovnoma javoblari bo'lmaganda yo'nalish va
// dastur ro'yxatini spec darajasidan taxmin qiladi
func inferSurveyTags(ramGB int, gpu string) (major, activities string, programs []string) {
	gpuLower := strings.ToLower(gpu)
	highSpec := ramGB >= 16 ||
		strings.Contains(gpuLower, "rtx") ||
		strings.Contains(gpuLower, "gtx") ||
		strings.Contains(gpuLower, "radeon rx")

	switch {
	case highSpec:
		return "Knowledge Engineering",
			"Programming/Coding, Running Virtual Machines, CAD/3D Modeling, Graphic Design/Video Editing",
			[]string{"TensorFlow", "PyTorch", "Unity", "Unreal Engine"}
	case ramGB >= 8:
		return "Software Engineering",
			"Programming/Coding, Web Browsing and Research, Office/Documentation, Database Management",
			[]string{"VS Code", "Git", "Postman", "XAMPP"}
	default:
		return "No Major Yet",
			"Web Browsing and Research, Office/Documentation",
			[]string{"Chrome", "Word", "Excel"}
	}
}
