package repository

import "context"

// AIRepository AI xizmati bilan ishlash interfeysi
type AIRepository interface {
	// GenerateReport instruction asosida data bo'yicha hisobot yaratadi
	GenerateReport(ctx context.Context, instruction, data string) (string, error)

	// Close resurslarni tozalash
	Close() error
}
