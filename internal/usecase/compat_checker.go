package usecase

import (
	"fmt"

	"github.com/yourusername/campus-pc-advisor/internal/domain/constants"
	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

// CheckBuild desktop buildni qat'iy tartibdagi qoidalar bo'yicha tekshiradi.
// Pure funksiya: bir xil build uchun doim bir xil violation ro'yxati.
// Laptop rejimida tekshiruv yo'q (tayyor mahsulot mos deb olinadi).
//
// Qoidalar tartibi: socket, memory type, form factor, quvvat, tier balans.
func CheckBuild(b *entity.Build, lang string) []entity.Violation {
	if b == nil || b.Laptop != nil {
		return nil
	}

	var violations []entity.Violation

	cpu := b.Component(entity.CategoryCPU)
	gpu := b.Component(entity.CategoryGPU)
	mb := b.Component(entity.CategoryMotherboard)
	ram := b.Component(entity.CategoryRAM)
	psu := b.Component(entity.CategoryPSU)
	pcCase := b.Component(entity.CategoryCase)

	// 1. CPU socket motherboard socketiga mos kelishi shart
	if cpu != nil && mb != nil && cpu.Socket != mb.Socket {
		violations = append(violations, entity.Violation{
			Severity: entity.SeverityCritical,
			Message: pickLang(lang,
				fmt.Sprintf("CPU socketi (%s) motherboard socketiga (%s) mos emas", cpu.Socket, mb.Socket),
				fmt.Sprintf("Сокет процессора (%s) не совпадает с сокетом материнской платы (%s)", cpu.Socket, mb.Socket)),
		})
	}

	// 2. RAM turi motherboard qo'llab-quvvatlaydigan turga mos kelishi shart
	if ram != nil && mb != nil && ram.MemoryType != mb.MemoryType {
		violations = append(violations, entity.Violation{
			Severity: entity.SeverityCritical,
			Message: pickLang(lang,
				fmt.Sprintf("RAM turi (%s) motherboard qo'llab-quvvatlaydigan turga (%s) mos emas", ram.MemoryType, mb.MemoryType),
				fmt.Sprintf("Тип памяти (%s) не поддерживается материнской платой (%s)", ram.MemoryType, mb.MemoryType)),
		})
	}

	// 3. Motherboard form factori case ga sig'ishi shart
	if mb != nil && pcCase != nil && !pcCase.SupportsFormFactor(mb.FormFactor) {
		violations = append(violations, entity.Violation{
			Severity: entity.SeverityCritical,
			Message: pickLang(lang,
				fmt.Sprintf("Motherboard form factori (%s) case ga sig'maydi (qo'llab-quvvatlanadi: %s)", mb.FormFactor, pcCase.SpecSummary()),
				fmt.Sprintf("Форм-фактор платы (%s) не помещается в корпус (поддерживается: %s)", mb.FormFactor, pcCase.SpecSummary())),
		})
	}

	// 4. Quvvat: CPU TDP + GPU TDP + baseline <= 0.8 * PSU wattage.
	// Tenglik yetarli hisoblanadi.
	if psu != nil {
		estimated := constants.BaselineWattage
		if cpu != nil {
			estimated += cpu.TDP
		}
		if gpu != nil {
			estimated += gpu.TDP
		}
		budget := constants.PSUHeadroomRatio * float64(psu.Wattage)
		if float64(estimated) > budget {
			violations = append(violations, entity.Violation{
				Severity: entity.SeverityCritical,
				Message: pickLang(lang,
					fmt.Sprintf("Quvvat yetarli emas: taxminiy sarf %dW, %dW PSU xavfsiz chegarasi %.0fW", estimated, psu.Wattage, budget),
					fmt.Sprintf("Недостаточно мощности: расчётное потребление %dВт, безопасный предел БП %dВт равен %.0fВт", estimated, psu.Wattage, budget)),
			})
		}
	}

	// 5. Tier balans: kuchsiz CPU kuchli GPU ni to'liq ishlata olmaydi.
	// Teskari holat (kuchli CPU + kuchsiz GPU) ogohlantirilmaydi.
	if cpu != nil && gpu != nil && cpu.Tier == entity.TierEntry && gpu.Tier == entity.TierHigh {
		violations = append(violations, entity.Violation{
			Severity: entity.SeverityWarning,
			Message: pickLang(lang,
				fmt.Sprintf("Entry-level CPU (%s) high-end GPU (%s) uchun bottleneck bo'ladi", cpu.Name, gpu.Name),
				fmt.Sprintf("Процессор начального уровня (%s) станет узким местом для мощной видеокарты (%s)", cpu.Name, gpu.Name)),
		})
	}

	return violations
}
