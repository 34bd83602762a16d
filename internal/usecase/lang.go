package usecase

// Qo'llab-quvvatlanadigan tillar
const (
	LangUZ = "uz"
	LangRU = "ru"
)

// pickLang tilga qarab matn tanlaydi (default: uz)
func pickLang(lang, uz, ru string) string {
	if lang == LangRU {
		return ru
	}
	return uz
}

// NormalizeLang noma'lum til kodini defaultga tushiradi
func NormalizeLang(lang string) string {
	if lang == LangRU {
		return LangRU
	}
	return LangUZ
}
