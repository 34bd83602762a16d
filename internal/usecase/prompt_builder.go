package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/campus-pc-advisor/internal/domain/entity"
)

// Prompt AI ga yuboriladigan ikki blok: o'zgarmas instruction va
// build holatini tavsiflovchi data
type Prompt struct {
	Instruction string
	Data        string
}

const instructionUZ = `Sen talabalar uchun kompyuter tanlashda yordam beradigan professional hardware maslahatchisisan. O'zbek tilida do'stona va aniq gaplashasan.

🎯 MAQSAD: Berilgan konfiguratsiya yoki laptop o'quv workloadlari uchun qanchalik mosligini baholash

WORKLOAD KATEGORIYALARI:
1. IDE & Compilation
2. Mobile Emulator Development
3. 3D & Graphics Engines
4. Containerized DevOps
5. Data Science & ML

TEKSHIRISHING SHART:
✅ Komponentlar o'zaro mosligi (aniqlangan muammolar data blokida berilgan)
✅ Har bir workload uchun performance darajasi
✅ Bottleneck bor-yo'qligi (kuchsiz komponent kuchlisini cheklashi)
✅ Laptop bo'lsa: batareya va termal holat

JAVOB FORMATI (QAT'IY):
Birinchi qator ANIQ shu ko'rinishda bo'lishi SHART:
SCORE: <0-100 oralig'idagi butun son>

Keyingi qator:
VERDICT: MOS yoki VERDICT: MOS EMAS

So'ng:
- Qisqa umumiy xulosa (2-3 gap)
- Har bir workload uchun reyting ro'yxati (A'lo/Yaxshi/O'rtacha/Past)
- Yakuniy tavsiya paragrafi

MUHIM QOIDALAR:
1. SCORE qatori birinchi bo'lsin, boshqa hech narsa undan oldin yozma
2. Data blokida berilgan lokal ballni kontekst sifatida hisobga ol
3. Texnik atamalar (CPU, RAM, socket, workload nomlari) inglizcha qoladi
4. Narx haqida taxmin qilma, faqat berilgan ma'lumotdan foydalaningiz`

const instructionRU = `Ты профессиональный консультант по компьютерному железу, помогающий студентам выбрать компьютер. Отвечаешь дружелюбно и точно.

🎯 ЦЕЛЬ: Оценить, насколько данная конфигурация или ноутбук подходит для учебных workload-ов

КАТЕГОРИИ WORKLOAD:
1. IDE & Compilation
2. Mobile Emulator Development
3. 3D & Graphics Engines
4. Containerized DevOps
5. Data Science & ML

ОБЯЗАТЕЛЬНО ПРОВЕРЬ:
✅ Совместимость компонентов (найденные проблемы перечислены в блоке данных)
✅ Уровень производительности для каждого workload
✅ Наличие bottleneck (слабый компонент ограничивает сильный)
✅ Для ноутбука: батарея и тепловой режим

ФОРМАТ ОТВЕТА (СТРОГО):
Первая строка ТОЧНО в таком виде:
SCORE: <целое число 0-100>

Следующая строка:
VERDICT: СОВМЕСТИМО или VERDICT: НЕСОВМЕСТИМО

Затем:
- Краткое общее резюме (2-3 предложения)
- Список рейтингов по каждому workload (Отлично/Хорошо/Средне/Слабо)
- Итоговый абзац с рекомендацией

ВАЖНЫЕ ПРАВИЛА:
1. Строка SCORE идёт первой, ничего не пиши перед ней
2. Учитывай локальный балл из блока данных как контекст
3. Весь текст, кроме технических терминов (CPU, RAM, socket, названия workload), пиши НА РУССКОМ
4. Не придумывай цены, используй только предоставленные данные`

// BuildPrompt build holati, violationlar va lokal balldan prompt yig'adi
func BuildPrompt(b *entity.Build, violations []entity.Violation, localScore int, lang string) Prompt {
	return Prompt{
		Instruction: pickLang(lang, instructionUZ, instructionRU),
		Data:        dataBlock(b, violations, localScore, lang),
	}
}

func dataBlock(b *entity.Build, violations []entity.Violation, localScore int, lang string) string {
	var sb strings.Builder

	if b.Laptop != nil {
		sb.WriteString(pickLang(lang, "LAPTOP:\n", "НОУТБУК:\n"))
		l := b.Laptop
		fmt.Fprintf(&sb, "• %s\n", l.Name)
		if l.Specs != "" {
			fmt.Fprintf(&sb, "• Specs: %s\n", l.Specs)
		}
		fmt.Fprintf(&sb, "• %s: %s\n", pickLang(lang, "Batareya", "Батарея"), l.BatteryLife)
		if l.Price > 0 {
			fmt.Fprintf(&sb, "• %s: %.0f$\n", pickLang(lang, "Narx", "Цена"), l.Price)
		}
		if l.Major != "" {
			fmt.Fprintf(&sb, "• %s: %s\n", pickLang(lang, "Yo'nalish", "Направление"), l.Major)
		}
		if len(l.Programs) > 0 {
			fmt.Fprintf(&sb, "• %s: %s\n", pickLang(lang, "Dasturlar", "Программы"), strings.Join(l.Programs, ", "))
		}
	} else {
		sb.WriteString(pickLang(lang, "PC KONFIGURATSIYA:\n", "КОНФИГУРАЦИЯ ПК:\n"))
		for _, cat := range entity.AllCategories {
			c := b.Component(cat)
			if c == nil {
				// "Not Selected" texnik token sifatida har ikki tilda bir xil
				fmt.Fprintf(&sb, "• %s: Not Selected\n", cat)
				continue
			}
			fmt.Fprintf(&sb, "• %s: %s (%s)\n", cat, c.Name, c.SpecSummary())
		}
	}

	sb.WriteString("\n")
	if len(violations) == 0 {
		sb.WriteString(pickLang(lang,
			"ANIQLANGAN MUAMMOLAR: yo'q\n",
			"ОБНАРУЖЕННЫЕ ПРОБЛЕМЫ: нет\n"))
	} else {
		sb.WriteString(pickLang(lang, "ANIQLANGAN MUAMMOLAR:\n", "ОБНАРУЖЕННЫЕ ПРОБЛЕМЫ:\n"))
		for _, v := range violations {
			fmt.Fprintf(&sb, "• [%s] %s\n", v.Severity, v.Message)
		}
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s: %d/100\n",
		pickLang(lang, "LOKAL HISOBLANGAN BALL", "ЛОКАЛЬНО ВЫЧИСЛЕННЫЙ БАЛЛ"), localScore)

	return sb.String()
}
