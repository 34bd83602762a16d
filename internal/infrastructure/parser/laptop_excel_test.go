package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func laptopWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	header := []interface{}{"model_name", "processor_name", "ram(GB)", "graphics", "screen_size(inches)", "resolution (pixels)", "price"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("SetSheetRow xato: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow xato: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer xato: %v", err)
	}
	return buf
}

func TestParseLaptopsReader(t *testing.T) {
	buf := laptopWorkbook(t, [][]interface{}{
		{"ASUS TUF Gaming F15", "Intel Core i7-12700H", "16", "NVIDIA RTX 4060", "15.6", "1920 x 1080", "1100"},
		{"MacBook Air M2", "Apple M2", "8", "Apple Integrated", "13.6", "2560 x 1664", "999"},
	})

	laptops, err := ParseLaptopsReader(buf)
	if err != nil {
		t.Fatalf("ParseLaptopsReader xato: %v", err)
	}
	if len(laptops) != 2 {
		t.Fatalf("2 ta laptop kutilgan edi, olindi %d", len(laptops))
	}

	gaming := laptops[0]
	if gaming.ID == "" {
		t.Fatal("laptop ID berilishi kerak")
	}
	if gaming.BatteryLife != "2-4 soat" {
		t.Fatalf("gaming batareya bucketi noto'g'ri: %q", gaming.BatteryLife)
	}
	if !strings.Contains(gaming.Specs, "RTX 4060") || !strings.Contains(gaming.Specs, "16GB RAM") {
		t.Fatalf("specs noto'g'ri yig'ildi: %q", gaming.Specs)
	}
	if gaming.Major != "Knowledge Engineering" {
		t.Fatalf("high-spec laptop uchun Major noto'g'ri: %q", gaming.Major)
	}
	if gaming.Price != 1100 {
		t.Fatalf("narx noto'g'ri: %v", gaming.Price)
	}

	mac := laptops[1]
	if mac.BatteryLife != "12-18 soat" {
		t.Fatalf("apple batareya bucketi noto'g'ri: %q", mac.BatteryLife)
	}
	if mac.Major != "Software Engineering" {
		t.Fatalf("8GB laptop uchun Major noto'g'ri: %q", mac.Major)
	}
}

func TestParseLaptopsReader_MissingValuesFilled(t *testing.T) {
	buf := laptopWorkbook(t, [][]interface{}{
		{"HP 250 G8", "Intel Core i3-1115G4", "4", "Missing", "", "null", ""},
		{"Lenovo V15", "AMD Ryzen 3 5300U", "8", "", "NULL", "", ""},
	})

	laptops, err := ParseLaptopsReader(buf)
	if err != nil {
		t.Fatalf("ParseLaptopsReader xato: %v", err)
	}

	hp := laptops[0]
	if !strings.Contains(hp.Specs, "Intel Integrated Graphics") {
		t.Fatalf("Intel graphics to'ldirilishi kerak edi: %q", hp.Specs)
	}
	if !strings.Contains(hp.Specs, "15.6") || !strings.Contains(hp.Specs, "1920 x 1080") {
		t.Fatalf("default ekran qiymatlari to'ldirilishi kerak edi: %q", hp.Specs)
	}
	if hp.Major != "No Major Yet" {
		t.Fatalf("past spec uchun Major noto'g'ri: %q", hp.Major)
	}

	lenovo := laptops[1]
	if !strings.Contains(lenovo.Specs, "AMD Radeon Graphics") {
		t.Fatalf("AMD graphics to'ldirilishi kerak edi: %q", lenovo.Specs)
	}
}

func TestParseLaptopsReader_SkipsEmptyModelRows(t *testing.T) {
	buf := laptopWorkbook(t, [][]interface{}{
		{"ASUS Vivobook 15", "Intel Core i5-1235U", "8", "Intel Iris Xe", "15.6", "1920 x 1080", ""},
		{"", "", "", "", "", "", ""},
		{"Missing", "Intel Core i5", "8", "", "", "", ""},
	})

	laptops, err := ParseLaptopsReader(buf)
	if err != nil {
		t.Fatalf("ParseLaptopsReader xato: %v", err)
	}
	if len(laptops) != 1 {
		t.Fatalf("bo'sh qatorlar tashlanishi kerak edi, olindi %d", len(laptops))
	}
}

func TestParseLaptopsReader_MissingColumn(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"model_name", "ram(GB)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("SetSheetRow xato: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer xato: %v", err)
	}

	if _, err := ParseLaptopsReader(buf); err == nil {
		t.Fatal("yetishmayotgan ustun xato berishi kerak")
	}
}
