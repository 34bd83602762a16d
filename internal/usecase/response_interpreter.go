package usecase

import (
	"regexp"
	"strconv"
	"strings"
)

var scorePattern = regexp.MustCompile(`(?i)SCORE:\s*(\d+)`)

// InterpretResponse AI javobidan SCORE qatorini ajratib oladi.
// Qator topilmasa score 0, to'liq matn va parsed=false qaytadi;
// bu hech qachon xato emas, chaqiruvchi flagga qarab hal qiladi.
func InterpretResponse(raw string) (score int, text string, parsed bool) {
	loc := scorePattern.FindStringSubmatchIndex(raw)
	if loc == nil {
		return 0, raw, false
	}

	n, err := strconv.Atoi(raw[loc[2]:loc[3]])
	if err != nil {
		return 0, raw, false
	}
	score = clampScore(n)

	// SCORE joylashgan qatorni to'liq olib tashlaymiz
	lineStart := strings.LastIndexByte(raw[:loc[0]], '\n') + 1
	lineEnd := len(raw)
	if i := strings.IndexByte(raw[loc[1]:], '\n'); i >= 0 {
		lineEnd = loc[1] + i + 1
	}
	text = strings.TrimLeft(raw[:lineStart]+raw[lineEnd:], "\n")

	return score, text, true
}
