package classifier

import (
	"strings"

	"github.com/shenikar/incident_reporting_system/internal/models"
)

// Наборы ключевых слов по уровням. Заполняются один раз при старте
// процесса, путей мутации в рантайме нет.
var (
	highKeywords = []string{
		"robbery", "assault", "theft", "attempted murder", "murder", "homicide",
	}
	mediumKeywords = []string{
		"accident", "collision", "fire", "explosion",
	}
	lowKeywords = []string{
		"property damage", "vandalism", "lost pet", "pet theft",
	}
)

// Classify определяет уровень серьезности по свободному описанию.
// Наборы проверяются в фиксированном порядке High -> Medium -> Low,
// первый найденный уровень выигрывает. Если ни одно слово не совпало
// (включая пустую строку), возвращается SeverityUnclassified.
// Функция чистая, детерминированная и не имеет режима отказа.
func Classify(description string) models.Severity {
	text := strings.ToLower(description)

	if containsAny(text, highKeywords) {
		return models.SeverityHigh
	}
	if containsAny(text, mediumKeywords) {
		return models.SeverityMedium
	}
	if containsAny(text, lowKeywords) {
		return models.SeverityLow
	}
	return models.SeverityUnclassified
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
