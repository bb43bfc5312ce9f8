package types

import (
	"fmt"
	"strings"
	"time"
)

// clock12Layout формат отображения времени для пользователя ("3:04 PM")
const clock12Layout = "3:04 PM"

// clockLayouts форматы, которые принимает ParseClockText, в порядке приоритета.
// Первый формат, разобравший строку целиком, выигрывает — без угадывания.
var clockLayouts = []string{
	"3:04 PM", // "10:00 AM"
	"15:04",   // "22:00"
	"3:04PM",  // "10:00AM"
	"3 PM",    // "10 AM"
	"3PM",     // "10AM"
	"15",      // "22"
}

// ParseClockText разбирает время суток из текста в одном из поддерживаемых форматов.
// Возвращает ошибку для пустой строки и для текста, не подходящего ни под один формат.
// Ошибка всегда отличима от валидной полуночи ("12:00 AM" -> "00:00", nil).
func ParseClockText(text string) (TimeString, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidTimeString)
	}

	// Маркер AM/PM сравниваем без учета регистра
	upper := strings.ToUpper(trimmed)

	for _, layout := range clockLayouts {
		parsed, err := time.Parse(layout, upper)
		if err != nil {
			continue
		}
		return TimeString(parsed.Format(timeStringLayout)), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, text)
}

// Clock12 форматирует абсолютное время в 12-часовом виде для отображения
func Clock12(t time.Time) string {
	return t.Format(clock12Layout)
}
