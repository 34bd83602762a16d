package entity

import "testing"

func TestClassifyBatteryLife(t *testing.T) {
	tests := []struct {
		name  string
		specs string
		want  string
	}{
		{"ASUS TUF Gaming F15", "Intel Core i7, RTX 4060", "2-4 soat"},
		{"Lenovo Legion 5", "AMD Ryzen 7, RTX 3060", "2-4 soat"},
		{"MacBook Air M2", "Apple M2, 16GB RAM", "12-18 soat"},
		{"ASUS Zenbook 14", "Intel Core i5", "8-12 soat"},
		{"Dell XPS 13", "Intel Core i7", "8-12 soat"},
		{"Acer Aspire 3", "Intel Celeron", "5-8 soat"},
	}
	for _, tt := range tests {
		if got := ClassifyBatteryLife(tt.name, tt.specs); got != tt.want {
			t.Errorf("ClassifyBatteryLife(%q) = %q, kutilgan %q", tt.name, got, tt.want)
		}
	}
}

func TestClassifyBatteryLife_RuleOrder(t *testing.T) {
	// Gaming belgisi Apple belgisidan ustun: birinchi mos qoida g'olib
	if got := ClassifyBatteryLife("Gaming laptop like MacBook", ""); got != "2-4 soat" {
		t.Fatalf("gaming qoidasi birinchi bo'lishi kerak, olindi %q", got)
	}
	// Apple belgisi ultrabook belgisidan ustun
	if got := ClassifyBatteryLife("MacBook Air", "Apple M2"); got != "12-18 soat" {
		t.Fatalf("apple qoidasi ultrabookdan ustun bo'lishi kerak, olindi %q", got)
	}
}

func TestClassifyBatteryLife_ThinkpadNotUltrabook(t *testing.T) {
	// "thinkpad" ichidagi harflar ultrabook kalit so'zlariga mos kelmasligi kerak
	if got := ClassifyBatteryLife("Lenovo ThinkPad E14", "Intel Core i5"); got != DefaultBatteryLife {
		t.Fatalf("ThinkPad default bucket olishi kerak, olindi %q", got)
	}
}

func TestLaptopPerformanceRating(t *testing.T) {
	tests := []struct {
		name  string
		specs string
		want  int
	}{
		{"ASUS ROG", "Intel Core i9, RTX 4090", 100},
		{"MacBook Pro M3", "Apple M3, 18GB RAM", 100},
		{"Dell G15", "Intel Core i7, RTX 3050", 75},
		{"MacBook Air M2", "Apple M2, 8GB RAM", 75},
		{"HP Pavilion", "Intel Core i5, GTX 1650", 50},
		{"Acer Aspire", "Intel Celeron, 4GB RAM", 25},
	}
	for _, tt := range tests {
		l := Laptop{Name: tt.name, Specs: tt.specs}
		if got := l.PerformanceRating(); got != tt.want {
			t.Errorf("%s: PerformanceRating = %d, kutilgan %d", tt.name, got, tt.want)
		}
	}
}

func TestLaptopValidate(t *testing.T) {
	if err := (Laptop{ID: "l1", Name: "Test"}).Validate(); err != nil {
		t.Fatalf("yaroqli laptop xato berdi: %v", err)
	}
	if err := (Laptop{Name: "Test"}).Validate(); err == nil {
		t.Fatal("ID siz laptop xato berishi kerak")
	}
	if err := (Laptop{ID: "l1"}).Validate(); err == nil {
		t.Fatal("nomsiz laptop xato berishi kerak")
	}
}
