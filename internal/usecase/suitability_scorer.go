package usecase

import (
	"math"

	"github.com/yourusername/campus-pc-advisor/internal/domain/constants"
	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

// BaseScore moslik bazaviy bali: 100 dan violationlar uchun jarima ayiriladi
func BaseScore(violations []entity.Violation) int {
	criticals, warnings := entity.CountBySeverity(violations)
	score := 100 - constants.CriticalPenalty*criticals - constants.WarningPenalty*warnings
	if score < 0 {
		return 0
	}
	return score
}

// dimensionValue builddan dimension qiymatini oladi.
// Komponent tanlanmagan bo'lsa ok=false.
func dimensionValue(b *entity.Build, dim entity.Dimension) (float64, bool) {
	switch dim {
	case entity.DimCPUCores:
		if cpu := b.Component(entity.CategoryCPU); cpu != nil {
			return float64(cpu.Cores), true
		}
	case entity.DimRAMGB:
		if ram := b.Component(entity.CategoryRAM); ram != nil {
			return float64(ram.CapacityGB), true
		}
	case entity.DimGPUVRAMGB:
		if gpu := b.Component(entity.CategoryGPU); gpu != nil {
			return float64(gpu.VRAMGB), true
		}
	case entity.DimStorage:
		if st := b.Component(entity.CategoryStorage); st != nil {
			return float64(st.Interface), true
		}
	}
	return 0, false
}

// WorkloadScore bitta workload uchun og'irlangan ball.
// AllDimensions tartibida yuriladi: float yig'indisi deterministik.
func WorkloadScore(b *entity.Build, profile entity.WorkloadProfile) float64 {
	var total float64
	for _, dim := range entity.AllDimensions {
		weight, ok := profile.Weights[dim]
		if !ok {
			continue
		}
		rating := constants.UnselectedRating
		if value, selected := dimensionValue(b, dim); selected {
			rating = profile.Thresholds[dim].Rate(value)
		}
		total += weight * float64(rating)
	}
	return total
}

// ScoreBuild yakuniy 0-100 ball: moslik bazasi va performance o'rtachasining
// og'irlangan yig'indisi. Laptop rejimida performance laptopning keyword
// reytingidan olinadi.
func ScoreBuild(b *entity.Build, violations []entity.Violation, profiles []entity.WorkloadProfile) int {
	base := float64(BaseScore(violations))

	var performance float64
	if b.Laptop != nil {
		performance = float64(b.Laptop.PerformanceRating())
	} else if len(profiles) > 0 {
		var sum float64
		for _, p := range profiles {
			sum += WorkloadScore(b, p)
		}
		performance = sum / float64(len(profiles))
	}

	final := math.Round(constants.CompatibilityWeight*base + constants.PerformanceWeight*performance)
	return clampScore(int(final))
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
