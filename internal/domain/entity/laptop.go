package entity

import (
	"fmt"
	"strings"
)

// Laptop katalogdagi tayyor laptop modeli
type Laptop struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specs       string   `json:"specs"`
	BatteryLife string   `json:"battery_life"`
	Price       float64  `json:"price,omitempty"`
	Major       string   `json:"major,omitempty"`
	Activities  string   `json:"activities,omitempty"`
	Programs    []string `json:"programs,omitempty"`
}

// Validate majburiy maydonlarni tekshiradi
func (l Laptop) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("laptop: empty id")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("laptop %s: empty name", l.ID)
	}
	return nil
}

// DefaultBatteryLife hech qaysi qoida mos kelmaganda
const DefaultBatteryLife = "5-8 soat"

// batteryRule keyword to'plami va unga mos batareya bucket
type batteryRule struct {
	keywords []string
	bucket   string
}

// batteryRules tartib muhim: birinchi mos kelgan qoida g'olib.
// Gaming belgilar Apple belgilardan, Apple belgilar ultrabook
// belgilardan oldin tekshiriladi.
var batteryRules = []batteryRule{
	{
		keywords: []string{"gaming", "rtx", "gtx", "radeon rx", "predator", "nitro", "tuf", "legion"},
		bucket:   "2-4 soat",
	},
	{
		keywords: []string{"macbook", "apple", " m1", " m2", " m3"},
		bucket:   "12-18 soat",
	},
	{
		keywords: []string{"ultrabook", "zenbook", "swift", "gram", "air", "xps", "matebook"},
		bucket:   "8-12 soat",
	},
}

// ClassifyBatteryLife nom va spec matnidan batareya bucketini aniqlaydi
func ClassifyBatteryLife(name, specs string) string {
	text := strings.ToLower(name + " " + specs)
	for _, rule := range batteryRules {
		if containsAny(text, rule.keywords) {
			return rule.bucket
		}
	}
	return DefaultBatteryLife
}

// PerformanceRating laptop nomi va specidan 4 pog'onali reyting.
// Desktop scoring bilan bir xil shkala (25/50/75/100).
func (l Laptop) PerformanceRating() int {
	text := strings.ToLower(l.Name + " " + l.Specs)
	switch {
	case containsAny(text, []string{"rtx 40", "rtx 50", " m3", " m4", "i9", "ryzen 9"}):
		return 100
	case containsAny(text, []string{"rtx", " m1", " m2", "i7", "ryzen 7"}):
		return 75
	case containsAny(text, []string{"gtx", "i5", "ryzen 5", "radeon"}):
		return 50
	default:
		return 25
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
