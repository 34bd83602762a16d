package entity

// Dimension workload bahosida ishlatiladigan hardware o'lchovi
type Dimension string

const (
	DimCPUCores  Dimension = "cpu_cores"
	DimRAMGB     Dimension = "ram_gb"
	DimGPUVRAMGB Dimension = "gpu_vram_gb"
	DimStorage   Dimension = "storage_interface"
)

// AllDimensions qat'iy tartib: ball yig'indisi deterministik bo'lishi uchun
// map ustidan emas, shu slice ustidan yuriladi.
var AllDimensions = []Dimension{DimCPUCores, DimRAMGB, DimGPUVRAMGB, DimStorage}

// Threshold min/recommended/optimal pog'onalar
type Threshold struct {
	Min         float64
	Recommended float64
	Optimal     float64
}

// Rate qiymatni 4 pog'onali reytingga o'tkazadi
func (t Threshold) Rate(value float64) int {
	switch {
	case value >= t.Optimal:
		return 100
	case value >= t.Recommended:
		return 75
	case value >= t.Min:
		return 50
	default:
		return 25
	}
}

// WorkloadProfile bitta o'quv workload uchun talablar.
// Weights yig'indisi 1.0 bo'lishi shart.
type WorkloadProfile struct {
	Name       string
	Thresholds map[Dimension]Threshold
	Weights    map[Dimension]float64
}

// DefaultWorkloads beshta statik workload profili
func DefaultWorkloads() []WorkloadProfile {
	return []WorkloadProfile{
		{
			Name: "IDE & Compilation",
			Thresholds: map[Dimension]Threshold{
				DimCPUCores:  {Min: 4, Recommended: 6, Optimal: 8},
				DimRAMGB:     {Min: 8, Recommended: 16, Optimal: 32},
				DimGPUVRAMGB: {Min: 2, Recommended: 4, Optimal: 6},
				DimStorage:   {Min: 2, Recommended: 3, Optimal: 4},
			},
			Weights: map[Dimension]float64{
				DimCPUCores:  0.4,
				DimRAMGB:     0.3,
				DimGPUVRAMGB: 0.1,
				DimStorage:   0.2,
			},
		},
		{
			Name: "Mobile Emulator Development",
			Thresholds: map[Dimension]Threshold{
				DimCPUCores:  {Min: 4, Recommended: 8, Optimal: 12},
				DimRAMGB:     {Min: 8, Recommended: 16, Optimal: 32},
				DimGPUVRAMGB: {Min: 2, Recommended: 4, Optimal: 6},
				DimStorage:   {Min: 2, Recommended: 3, Optimal: 4},
			},
			Weights: map[Dimension]float64{
				DimCPUCores:  0.35,
				DimRAMGB:     0.35,
				DimGPUVRAMGB: 0.1,
				DimStorage:   0.2,
			},
		},
		{
			Name: "3D & Graphics Engines",
			Thresholds: map[Dimension]Threshold{
				DimCPUCores:  {Min: 4, Recommended: 6, Optimal: 8},
				DimRAMGB:     {Min: 16, Recommended: 32, Optimal: 64},
				DimGPUVRAMGB: {Min: 4, Recommended: 8, Optimal: 12},
				DimStorage:   {Min: 2, Recommended: 3, Optimal: 4},
			},
			Weights: map[Dimension]float64{
				DimCPUCores:  0.25,
				DimRAMGB:     0.25,
				DimGPUVRAMGB: 0.4,
				DimStorage:   0.1,
			},
		},
		{
			Name: "Containerized DevOps",
			Thresholds: map[Dimension]Threshold{
				DimCPUCores:  {Min: 4, Recommended: 8, Optimal: 16},
				DimRAMGB:     {Min: 16, Recommended: 32, Optimal: 64},
				DimGPUVRAMGB: {Min: 1, Recommended: 2, Optimal: 4},
				DimStorage:   {Min: 2, Recommended: 3, Optimal: 4},
			},
			Weights: map[Dimension]float64{
				DimCPUCores:  0.4,
				DimRAMGB:     0.35,
				DimGPUVRAMGB: 0.05,
				DimStorage:   0.2,
			},
		},
		{
			Name: "Data Science & ML",
			Thresholds: map[Dimension]Threshold{
				DimCPUCores:  {Min: 4, Recommended: 8, Optimal: 16},
				DimRAMGB:     {Min: 16, Recommended: 32, Optimal: 64},
				DimGPUVRAMGB: {Min: 4, Recommended: 8, Optimal: 16},
				DimStorage:   {Min: 2, Recommended: 3, Optimal: 4},
			},
			Weights: map[Dimension]float64{
				DimCPUCores:  0.25,
				DimRAMGB:     0.3,
				DimGPUVRAMGB: 0.35,
				DimStorage:   0.1,
			},
		},
	}
}

// WorkloadNames profillar nomlari (prompt uchun)
func WorkloadNames(profiles []WorkloadProfile) []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names
}
