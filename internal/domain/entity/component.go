package entity

import (
	"fmt"
	"strings"
)

// Category desktop komponent toifasi
type Category string

const (
	CategoryCPU         Category = "CPU"
	CategoryGPU         Category = "GPU"
	CategoryMotherboard Category = "Motherboard"
	CategoryRAM         Category = "RAM"
	CategoryStorage     Category = "Storage"
	CategoryPSU         Category = "PSU"
	CategoryCase        Category = "Case"
)

// AllCategories barcha desktop slotlar (chiqish tartibida)
var AllCategories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryMotherboard,
	CategoryRAM,
	CategoryStorage,
	CategoryPSU,
	CategoryCase,
}

// ValidCategory toifa ro'yxatda bormi
func ValidCategory(c Category) bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Tier komponentning dag'al performance klassi
type Tier string

const (
	TierEntry Tier = "entry-level"
	TierMid   Tier = "mid-range"
	TierHigh  Tier = "high-end"
)

// ParseTier katalog manbalaridagi turli yozuvlarni qabul qiladi
func ParseTier(raw string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "entry", "entry-level", "low":
		return TierEntry, nil
	case "mid", "mid-range", "middle", "":
		return TierMid, nil
	case "high", "high-end", "enthusiast":
		return TierHigh, nil
	default:
		return "", fmt.Errorf("unknown tier %q", raw)
	}
}

// StorageInterface disk interfeysi, tezlik bo'yicha tartiblangan.
// Sonli qiymat threshold taqqoslashda ishlatiladi.
type StorageInterface int

const (
	StorageHDD StorageInterface = iota + 1
	StorageSATASSD
	StorageNVMeGen3
	StorageNVMeGen4
)

func (s StorageInterface) String() string {
	switch s {
	case StorageHDD:
		return "HDD"
	case StorageSATASSD:
		return "SATA SSD"
	case StorageNVMeGen3:
		return "NVMe Gen3"
	case StorageNVMeGen4:
		return "NVMe Gen4"
	default:
		return "Unknown"
	}
}

// ParseStorageInterface katalogdagi interfeys yozuvini o'qiydi
func ParseStorageInterface(raw string) (StorageInterface, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "hdd":
		return StorageHDD, nil
	case "ssd", "sata", "sata ssd":
		return StorageSATASSD, nil
	case "nvme", "nvme gen3", "gen3", "m.2":
		return StorageNVMeGen3, nil
	case "nvme gen4", "gen4", "nvme gen5", "gen5":
		return StorageNVMeGen4, nil
	default:
		return 0, fmt.Errorf("unknown storage interface %q", raw)
	}
}

// Component katalogdagi bitta komponent. Toifaga qarab faqat tegishli
// atributlar to'ldiriladi; Validate yuklash paytida shuni tekshiradi.
type Component struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Tier     Tier     `json:"tier"`

	// CPU / Motherboard
	Socket string `json:"socket,omitempty"`

	// CPU
	Cores int `json:"cores,omitempty"`

	// CPU / GPU
	TDP int `json:"tdp,omitempty"`

	// GPU
	VRAMGB int `json:"vram_gb,omitempty"`

	// RAM / Motherboard
	MemoryType string `json:"memory_type,omitempty"`

	// RAM / Storage
	CapacityGB int `json:"capacity_gb,omitempty"`

	// RAM
	SpeedMHz int `json:"speed_mhz,omitempty"`

	// Storage
	Interface StorageInterface `json:"interface,omitempty"`

	// Motherboard
	FormFactor string `json:"form_factor,omitempty"`

	// PSU
	Wattage int `json:"wattage,omitempty"`

	// Case
	FormFactors []string `json:"form_factors,omitempty"`
}

// Validate majburiy atributlarni tekshiradi. Katalog yuklashda chaqiriladi:
// yaroqsiz yozuv evaluation paytiga yetib bormasligi kerak.
func (c Component) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("component: empty id")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("component %s: empty name", c.ID)
	}
	switch c.Category {
	case CategoryCPU:
		if c.Socket == "" {
			return fmt.Errorf("component %s: CPU socket missing", c.ID)
		}
		if c.Cores <= 0 {
			return fmt.Errorf("component %s: CPU core count missing", c.ID)
		}
		if c.TDP <= 0 {
			return fmt.Errorf("component %s: CPU TDP missing", c.ID)
		}
	case CategoryGPU:
		if c.VRAMGB <= 0 {
			return fmt.Errorf("component %s: GPU VRAM missing", c.ID)
		}
		if c.TDP <= 0 {
			return fmt.Errorf("component %s: GPU TDP missing", c.ID)
		}
	case CategoryMotherboard:
		if c.Socket == "" {
			return fmt.Errorf("component %s: motherboard socket missing", c.ID)
		}
		if c.MemoryType == "" {
			return fmt.Errorf("component %s: motherboard memory type missing", c.ID)
		}
		if c.FormFactor == "" {
			return fmt.Errorf("component %s: motherboard form factor missing", c.ID)
		}
	case CategoryRAM:
		if c.MemoryType == "" {
			return fmt.Errorf("component %s: RAM memory type missing", c.ID)
		}
		if c.CapacityGB <= 0 {
			return fmt.Errorf("component %s: RAM capacity missing", c.ID)
		}
	case CategoryStorage:
		if c.Interface < StorageHDD || c.Interface > StorageNVMeGen4 {
			return fmt.Errorf("component %s: storage interface missing", c.ID)
		}
		if c.CapacityGB <= 0 {
			return fmt.Errorf("component %s: storage capacity missing", c.ID)
		}
	case CategoryPSU:
		if c.Wattage <= 0 {
			return fmt.Errorf("component %s: PSU wattage missing", c.ID)
		}
	case CategoryCase:
		if len(c.FormFactors) == 0 {
			return fmt.Errorf("component %s: case form factors missing", c.ID)
		}
	default:
		return fmt.Errorf("component %s: unknown category %q", c.ID, c.Category)
	}
	return nil
}

// SupportsFormFactor case shu form factorni qabul qiladimi
func (c Component) SupportsFormFactor(formFactor string) bool {
	for _, ff := range c.FormFactors {
		if strings.EqualFold(strings.TrimSpace(ff), strings.TrimSpace(formFactor)) {
			return true
		}
	}
	return false
}

// SpecSummary prompt va API javoblari uchun qisqa texnik tavsif
func (c Component) SpecSummary() string {
	switch c.Category {
	case CategoryCPU:
		return fmt.Sprintf("socket %s, %d cores, %dW TDP", c.Socket, c.Cores, c.TDP)
	case CategoryGPU:
		return fmt.Sprintf("%dGB VRAM, %dW TDP", c.VRAMGB, c.TDP)
	case CategoryMotherboard:
		return fmt.Sprintf("socket %s, %s, %s", c.Socket, c.MemoryType, c.FormFactor)
	case CategoryRAM:
		if c.SpeedMHz > 0 {
			return fmt.Sprintf("%s %dGB %dMHz", c.MemoryType, c.CapacityGB, c.SpeedMHz)
		}
		return fmt.Sprintf("%s %dGB", c.MemoryType, c.CapacityGB)
	case CategoryStorage:
		return fmt.Sprintf("%s %dGB", c.Interface, c.CapacityGB)
	case CategoryPSU:
		return fmt.Sprintf("%dW", c.Wattage)
	case CategoryCase:
		return strings.Join(c.FormFactors, "/")
	default:
		return ""
	}
}
