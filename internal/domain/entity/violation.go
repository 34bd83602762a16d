package entity

// Severity violation og'irligi
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Violation moslik tekshiruvida topilgan muammo
type Violation struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// CountBySeverity critical va warning sonini qaytaradi
func CountBySeverity(violations []Violation) (criticals, warnings int) {
	for _, v := range violations {
		switch v.Severity {
		case SeverityCritical:
			criticals++
		case SeverityWarning:
			warnings++
		}
	}
	return criticals, warnings
}

// Compatible critical violation yo'qligi
func Compatible(violations []Violation) bool {
	criticals, _ := CountBySeverity(violations)
	return criticals == 0
}
