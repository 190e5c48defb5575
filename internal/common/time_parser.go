package common

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/central-university-dev/go-reminder-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reminder-bot/internal/domain/models"
)

// TimeExpressionParser разбирает временные выражения трёх грамматик:
//
//	in N[s|m|h|d] <текст>      — относительное смещение (по умолчанию минуты)
//	at ГГГГ-ММ-ДД Ч:ММ <текст> — абсолютная дата в локальном времени
//	tomorrow Ч:ММ <текст>      — завтра в указанное время
//
// Грамматики проверяются строго в этом порядке: первая совпавшая побеждает.
type TimeExpressionParser struct {
	grammars []grammar
}

type grammar struct {
	kind  models.SpecKind
	regex *regexp.Regexp
	build func(now time.Time, groups []string) time.Time
}

func NewTimeExpressionParser() *TimeExpressionParser {
	return &TimeExpressionParser{
		grammars: []grammar{
			{
				kind:  models.SpecRelative,
				// Буква единицы — часть временного токена и прижата к числу:
				// однобуквенное первое слово текста единицей не считается.
				regex: regexp.MustCompile(`(?i)^in\s+(\d+)([a-z])?\s+(.*)$`),
				build: buildRelative,
			},
			{
				kind:  models.SpecAbsolute,
				regex: regexp.MustCompile(`(?i)^at\s+(\d{4})-(\d{2})-(\d{2})\s+(\d{1,2}):(\d{2})\s+(.*)$`),
				build: buildAbsolute,
			},
			{
				kind:  models.SpecNextDay,
				regex: regexp.MustCompile(`(?i)^tomorrow\s+(\d{1,2}):(\d{2})\s+(.*)$`),
				build: buildNextDay,
			},
		},
	}
}

// Parse возвращает разобранное выражение либо ErrNoTimeExpression, если ни
// одна грамматика не совпала. Пустой текст после временного токена считается
// совпадением: его отклоняет сервис, а не парсер.
func (p *TimeExpressionParser) Parse(raw string, now time.Time) (*models.ParsedSpec, error) {
	// Обрезается только ведущий пробел: хвостовой пробел после временного
	// токена — это разделитель перед (возможно пустым) текстом.
	trimmed := strings.TrimLeftFunc(raw, unicode.IsSpace)

	for _, g := range p.grammars {
		idx := g.regex.FindStringSubmatchIndex(trimmed)
		if idx == nil {
			continue
		}

		groups := submatches(trimmed, idx)
		textStart := idx[len(idx)-2]

		return &models.ParsedSpec{
			Kind:  g.kind,
			DueAt: g.build(now, groups),
			Text:  strings.TrimSpace(groups[len(groups)-1]),
			How:   strings.TrimSpace(trimmed[:textStart]),
		}, nil
	}

	return nil, &errors.ErrNoTimeExpression{Raw: raw}
}

func submatches(s string, idx []int) []string {
	groups := make([]string, 0, len(idx)/2-1)

	for i := 2; i < len(idx); i += 2 {
		if idx[i] < 0 {
			groups = append(groups, "")
			continue
		}

		groups = append(groups, s[idx[i]:idx[i+1]])
	}

	return groups
}

func buildRelative(now time.Time, groups []string) time.Time {
	amount, _ := strconv.ParseInt(groups[0], 10, 64)

	// Нераспознанные буквы единиц трактуются как минуты, а не как ошибка.
	unit := time.Minute

	switch strings.ToLower(groups[1]) {
	case "s":
		unit = time.Second
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	}

	return now.Add(time.Duration(amount) * unit)
}

func buildAbsolute(now time.Time, groups []string) time.Time {
	year, _ := strconv.Atoi(groups[0])
	month, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])
	hour, _ := strconv.Atoi(groups[3])
	minute, _ := strconv.Atoi(groups[4])

	// Календарная корректность не проверяется: месяц 13 нормализуется
	// конструктором времени.
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())
}

func buildNextDay(now time.Time, groups []string) time.Time {
	hour, _ := strconv.Atoi(groups[0])
	minute, _ := strconv.Atoi(groups[1])

	year, month, day := now.Date()

	return time.Date(year, month, day+1, hour, minute, 0, 0, now.Location())
}
