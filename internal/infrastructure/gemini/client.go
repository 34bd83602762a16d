package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/yourusername/campus-pc-advisor/internal/domain/constants"
	"github.com/yourusername/campus-pc-advisor/internal/domain/repository"
)

type geminiClient struct {
	client *genai.Client
}

// NewGeminiClient yangi Gemini AI client yaratish
func NewGeminiClient(apiKey string) (repository.AIRepository, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiClient{client: client}, nil
}

// GenerateReport instruction asosida data bo'yicha hisobot yaratadi.
// Bitta urinish: retry va timeout siyosati chaqiruvchida.
func (g *geminiClient) GenerateReport(ctx context.Context, instruction, data string) (string, error) {
	model := g.client.GenerativeModel(constants.GeminiModelName)

	// Model konfiguratsiyasi - aniq va barqaror javoblar uchun
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instruction)},
	}

	log.Printf("🔄 Gemini API ga so'rov yuborish...")

	resp, err := model.GenerateContent(ctx, genai.Text(data))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}

	if resp.Candidates[0].FinishReason != 0 {
		log.Printf("⚠️ Gemini FinishReason: %v", resp.Candidates[0].FinishReason)
		if resp.Candidates[0].FinishReason == 3 { // SAFETY
			log.Printf("🚫 Response blocked by safety filter!")
			return "", fmt.Errorf("response blocked by safety filter")
		}
	}

	responseText := extractText(resp)
	if strings.TrimSpace(responseText) == "" {
		return "", fmt.Errorf("empty response")
	}

	log.Printf("✅ Javob muvaffaqiyatli olindi")
	return responseText, nil
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				result.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return result.String()
}

// Close client ni yopish
func (g *geminiClient) Close() error {
	return g.client.Close()
}
