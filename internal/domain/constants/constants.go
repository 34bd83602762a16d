package constants

import "time"

// AI Model konstantalari
const (
	// GeminiModelName Gemini AI model nomi
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature AI javob aniqlik darajasi (0.0-1.0)
	AITemperature = 0.3

	// AITopK Top-K sampling parametri
	AITopK = 20

	// AITopP Top-P sampling parametri
	AITopP = 0.9

	// MaxAttempts AI ga so'rov yuborish uchun urinishlar soni
	MaxAttempts = 2

	// RequestTimeout har bir urinish uchun timeout
	RequestTimeout = 30 * time.Second

	// RetryDelay urinishlar o'rtasidagi kutish vaqti
	RetryDelay = 2 * time.Second
)

// Moslik tekshiruvi konstantalari
const (
	// BaselineWattage plata, RAM va disklar uchun doimiy sarf (W)
	BaselineWattage = 150

	// PSUHeadroomRatio PSU xavfsiz yuklanish chegarasi (20% zaxira)
	PSUHeadroomRatio = 0.8
)

// Ball hisoblash konstantalari
const (
	// CriticalPenalty har bir critical violation uchun jarima
	CriticalPenalty = 30

	// WarningPenalty har bir warning uchun jarima
	WarningPenalty = 10

	// CompatibilityWeight yakuniy balldagi moslik ulushi
	CompatibilityWeight = 0.3

	// PerformanceWeight yakuniy balldagi performance ulushi
	PerformanceWeight = 0.7

	// UnselectedRating tanlanmagan dimension uchun eng past pog'ona
	UnselectedRating = 25
)
