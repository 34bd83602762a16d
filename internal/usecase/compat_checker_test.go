package usecase

import (
	"strings"
	"testing"

	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

func testCPU(socket string, cores, tdp int, tier entity.Tier) *entity.Component {
	return &entity.Component{
		ID: "cpu-1", Category: entity.CategoryCPU, Name: "Test CPU", Tier: tier,
		Socket: socket, Cores: cores, TDP: tdp,
	}
}

func testGPU(vram, tdp int, tier entity.Tier) *entity.Component {
	return &entity.Component{
		ID: "gpu-1", Category: entity.CategoryGPU, Name: "Test GPU", Tier: tier,
		VRAMGB: vram, TDP: tdp,
	}
}

func testMotherboard(socket, memType, formFactor string) *entity.Component {
	return &entity.Component{
		ID: "mb-1", Category: entity.CategoryMotherboard, Name: "Test MB", Tier: entity.TierMid,
		Socket: socket, MemoryType: memType, FormFactor: formFactor,
	}
}

func testRAM(memType string, capacity int) *entity.Component {
	return &entity.Component{
		ID: "ram-1", Category: entity.CategoryRAM, Name: "Test RAM", Tier: entity.TierMid,
		MemoryType: memType, CapacityGB: capacity,
	}
}

func testStorage(iface entity.StorageInterface, capacity int) *entity.Component {
	return &entity.Component{
		ID: "st-1", Category: entity.CategoryStorage, Name: "Test SSD", Tier: entity.TierMid,
		Interface: iface, CapacityGB: capacity,
	}
}

func testPSU(wattage int) *entity.Component {
	return &entity.Component{
		ID: "psu-1", Category: entity.CategoryPSU, Name: "Test PSU", Tier: entity.TierMid,
		Wattage: wattage,
	}
}

func testCase(formFactors ...string) *entity.Component {
	return &entity.Component{
		ID: "case-1", Category: entity.CategoryCase, Name: "Test Case", Tier: entity.TierMid,
		FormFactors: formFactors,
	}
}

func buildWith(t *testing.T, components ...*entity.Component) *entity.Build {
	t.Helper()
	b := entity.NewBuild()
	for _, c := range components {
		if err := b.Select(c); err != nil {
			t.Fatalf("Select(%s) xato: %v", c.Category, err)
		}
	}
	return b
}

func TestCheckBuild_FullyCompatible(t *testing.T) {
	b := buildWith(t,
		testCPU("LGA1700", 8, 125, entity.TierMid),
		testGPU(8, 160, entity.TierMid),
		testMotherboard("LGA1700", "DDR5", "ATX"),
		testRAM("DDR5", 32),
		testStorage(entity.StorageNVMeGen4, 1000),
		testPSU(750),
		testCase("ATX", "Micro-ATX"),
	)

	violations := CheckBuild(b, LangUZ)
	if len(violations) != 0 {
		t.Fatalf("violation kutilmagan edi, olindi: %+v", violations)
	}
	if !entity.Compatible(violations) {
		t.Fatal("build mos bo'lishi kerak edi")
	}
}

func TestCheckBuild_SocketMismatch(t *testing.T) {
	b := buildWith(t,
		testCPU("AM5", 8, 105, entity.TierMid),
		testMotherboard("LGA1700", "DDR5", "ATX"),
		testRAM("DDR5", 32),
	)

	violations := CheckBuild(b, LangUZ)
	if len(violations) != 1 {
		t.Fatalf("1 ta violation kutilgan edi, olindi %d: %+v", len(violations), violations)
	}
	v := violations[0]
	if v.Severity != entity.SeverityCritical {
		t.Fatalf("critical kutilgan edi, olindi %s", v.Severity)
	}
	if !strings.Contains(v.Message, "AM5") || !strings.Contains(v.Message, "LGA1700") {
		t.Fatalf("xabarda ikkala socket bo'lishi kerak: %q", v.Message)
	}
}

func TestCheckBuild_MemoryTypeMismatch(t *testing.T) {
	b := buildWith(t,
		testMotherboard("LGA1700", "DDR5", "ATX"),
		testRAM("DDR4", 16),
	)

	violations := CheckBuild(b, LangUZ)
	if len(violations) != 1 || violations[0].Severity != entity.SeverityCritical {
		t.Fatalf("1 ta critical kutilgan edi, olindi: %+v", violations)
	}
	if !strings.Contains(violations[0].Message, "DDR4") || !strings.Contains(violations[0].Message, "DDR5") {
		t.Fatalf("xabarda ikkala memory type bo'lishi kerak: %q", violations[0].Message)
	}
}

func TestCheckBuild_FormFactorMismatch(t *testing.T) {
	b := buildWith(t,
		testMotherboard("LGA1700", "DDR5", "ATX"),
		testCase("Mini-ITX"),
	)

	violations := CheckBuild(b, LangUZ)
	if len(violations) != 1 || violations[0].Severity != entity.SeverityCritical {
		t.Fatalf("1 ta critical kutilgan edi, olindi: %+v", violations)
	}
}

func TestCheckBuild_PowerBoundary(t *testing.T) {
	// 150 + 180 + 150 = 480 = 0.8 * 600: tenglik yetarli
	ok := buildWith(t,
		testCPU("LGA1700", 8, 150, entity.TierMid),
		testGPU(8, 180, entity.TierMid),
		testPSU(600),
	)
	if violations := CheckBuild(ok, LangUZ); len(violations) != 0 {
		t.Fatalf("chegarada violation bo'lmasligi kerak: %+v", violations)
	}

	// 599W PSU: 480 > 479.2
	insufficient := buildWith(t,
		testCPU("LGA1700", 8, 150, entity.TierMid),
		testGPU(8, 180, entity.TierMid),
		testPSU(599),
	)
	violations := CheckBuild(insufficient, LangUZ)
	if len(violations) != 1 || violations[0].Severity != entity.SeverityCritical {
		t.Fatalf("quvvat violation kutilgan edi, olindi: %+v", violations)
	}
}

func TestCheckBuild_TierBalanceAsymmetry(t *testing.T) {
	weakCPU := buildWith(t,
		testCPU("AM5", 4, 65, entity.TierEntry),
		testGPU(16, 300, entity.TierHigh),
	)
	violations := CheckBuild(weakCPU, LangUZ)
	if len(violations) != 1 || violations[0].Severity != entity.SeverityWarning {
		t.Fatalf("1 ta warning kutilgan edi, olindi: %+v", violations)
	}
	if !entity.Compatible(violations) {
		t.Fatal("warning mos kelishga xalaqit bermasligi kerak")
	}

	// Teskari holat hech qachon ogohlantirilmaydi
	weakGPU := buildWith(t,
		testCPU("AM5", 16, 170, entity.TierHigh),
		testGPU(4, 75, entity.TierEntry),
	)
	if violations := CheckBuild(weakGPU, LangUZ); len(violations) != 0 {
		t.Fatalf("kuchli CPU + kuchsiz GPU ogohlantirilmasligi kerak: %+v", violations)
	}
}

func TestCheckBuild_RussianMessages(t *testing.T) {
	b := buildWith(t,
		testCPU("AM5", 8, 105, entity.TierMid),
		testMotherboard("LGA1700", "DDR5", "ATX"),
	)

	violations := CheckBuild(b, LangRU)
	if len(violations) != 1 {
		t.Fatalf("1 ta violation kutilgan edi: %+v", violations)
	}
	if !strings.Contains(violations[0].Message, "Сокет") {
		t.Fatalf("ruscha xabar kutilgan edi: %q", violations[0].Message)
	}
}

func TestCheckBuild_LaptopModeSkipsRules(t *testing.T) {
	b := entity.NewBuild()
	if err := b.SelectLaptop(&entity.Laptop{ID: "l1", Name: "MacBook Air M2"}); err != nil {
		t.Fatalf("SelectLaptop xato: %v", err)
	}
	if violations := CheckBuild(b, LangUZ); violations != nil {
		t.Fatalf("laptop rejimida violation bo'lmasligi kerak: %+v", violations)
	}
}

func TestCheckBuild_Deterministic(t *testing.T) {
	b := buildWith(t,
		testCPU("AM5", 8, 105, entity.TierEntry),
		testGPU(16, 300, entity.TierHigh),
		testMotherboard("LGA1700", "DDR5", "ATX"),
		testRAM("DDR4", 16),
		testPSU(300),
	)

	first := CheckBuild(b, LangUZ)
	for i := 0; i < 50; i++ {
		again := CheckBuild(b, LangUZ)
		if len(again) != len(first) {
			t.Fatalf("violation soni o'zgardi: %d vs %d", len(first), len(again))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("violation tartibi o'zgardi: %+v vs %+v", first[j], again[j])
			}
		}
	}
}
