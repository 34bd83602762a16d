package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/campus-pc-advisor/internal/domain/constants"
	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
	"github.com/yourusername/campus-pc-advisor/internal/domain/repository"
	"github.com/yourusername/campus-pc-advisor/pkg/logger"
)

var (
	// ErrInvalidBuild baholash uchun minimal tanlov yetishmaydi
	ErrInvalidBuild = errors.New("invalid build: minimal selection missing")

	// ErrServiceUnavailable AI xizmati barcha urinishlarda javob bermadi
	ErrServiceUnavailable = errors.New("ai service unavailable")
)

// Evaluator baholash pipelineni boshqaradi:
// tekshirish → ball → prompt → AI → talqin.
// Holatsiz: parallel chaqiruvlar uchun lock kerak emas.
type Evaluator struct {
	ai       repository.AIRepository
	profiles []entity.WorkloadProfile
}

// NewEvaluator yangi evaluator
func NewEvaluator(ai repository.AIRepository) *Evaluator {
	return &Evaluator{
		ai:       ai,
		profiles: entity.DefaultWorkloads(),
	}
}

// Evaluate buildni baholab to'liq hisobot qaytaradi.
// Desktop rejimida CPU, Motherboard va RAM tanlangan bo'lishi shart;
// laptop rejimida laptop. Aks holda ErrInvalidBuild.
func (e *Evaluator) Evaluate(ctx context.Context, b *entity.Build, lang string) (*entity.Report, error) {
	if b == nil || !b.IsComplete() {
		return nil, ErrInvalidBuild
	}
	lang = NormalizeLang(lang)

	// Baholash davomida build o'zgarmasligi uchun snapshot olamiz
	snap := b.Snapshot()

	violations := CheckBuild(snap, lang)
	localScore := ScoreBuild(snap, violations, e.profiles)
	prompt := BuildPrompt(snap, violations, localScore, lang)

	raw, err := e.generateWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	aiScore, text, parsed := InterpretResponse(raw)
	if !parsed {
		logger.ErrorLogger.Printf("⚠️ AI javobida SCORE qatori topilmadi, 0 deb belgilandi")
	}

	return &entity.Report{
		ID:          uuid.NewString(),
		Mode:        snap.Mode(),
		Lang:        lang,
		Compatible:  entity.Compatible(violations),
		Violations:  violations,
		LocalScore:  localScore,
		Score:       aiScore,
		ScoreParsed: parsed,
		Text:        text,
		CreatedAt:   time.Now(),
	}, nil
}

// generateWithRetry har bir urinishga alohida timeout beradi.
// Bo'sh javob ham muvaffaqiyatsiz urinish hisoblanadi: hech qachon
// o'ylab topilgan ball qaytarilmaydi.
func (e *Evaluator) generateWithRetry(ctx context.Context, prompt Prompt) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= constants.MaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
		raw, err := e.ai.GenerateReport(attemptCtx, prompt.Instruction, prompt.Data)
		cancel()

		if err == nil && raw != "" {
			return raw, nil
		}
		if err == nil {
			err = errors.New("empty response")
		}
		lastErr = err
		logger.ErrorLogger.Printf("❌ AI urinish %d/%d muvaffaqiyatsiz: %v", attempt, constants.MaxAttempts, err)

		if attempt < constants.MaxAttempts {
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, ctx.Err())
			case <-time.After(constants.RetryDelay):
			}
		}
	}

	return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, lastErr)
}
