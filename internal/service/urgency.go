package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shenikar/disaster_triage_system/internal/models"
)

// Пороги уверенности классификатора для базового уровня срочности.
// Спорные значения трактуются в сторону большей срочности: ложная тревога
// дешевле пропущенной.
const (
	baselineHighConfidence   = 0.75
	baselineMediumConfidence = 0.40
)

var digitsPattern = regexp.MustCompile(`\d+`)

// UrgencyScorer - детерминированная оценка срочности по извлечённым сущностям,
// выходу классификатора и ключевым словам. Функция тотальна: уровень
// возвращается для любой комбинации сигналов, включая полностью пустую.
type UrgencyScorer struct {
	escalationKeywords []string
	personCountMin     int
}

// NewUrgencyScorer создает скорер с заданной политикой эскалации
func NewUrgencyScorer(escalationKeywords []string, personCountMin int) *UrgencyScorer {
	keywords := make([]string, 0, len(escalationKeywords))
	for _, kw := range escalationKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return &UrgencyScorer{
		escalationKeywords: keywords,
		personCountMin:     personCountMin,
	}
}

// Score вычисляет уровень срочности. База берётся из верхней метки
// классификатора, затем эскалируется по одной ступени на каждый класс
// сигналов (число людей, ключевые слова), с потолком critical.
// Ниже базового уровня результат не опускается.
func (s *UrgencyScorer) Score(entities models.Entities, classification []models.ClassLabel, rawText string) models.UrgencyLevel {
	baseline := s.baseline(classification)

	steps := 0
	if s.personCountSignal(entities) {
		steps++
	}
	if s.keywordSignal(entities, rawText) {
		steps++
	}

	return baseline.Escalate(steps)
}

// baseline выводит базовый уровень из верхней метки классификатора.
// Отсутствие классификации или метка "safe" дают low.
func (s *UrgencyScorer) baseline(classification []models.ClassLabel) models.UrgencyLevel {
	var top *models.ClassLabel
	for i := range classification {
		if top == nil || classification[i].Confidence > top.Confidence {
			top = &classification[i]
		}
	}
	if top == nil || top.Label == "safe" || top.Confidence <= 0 {
		return models.UrgencyLow
	}
	switch {
	case top.Confidence >= baselineHighConfidence:
		return models.UrgencyHigh
	case top.Confidence >= baselineMediumConfidence:
		return models.UrgencyMedium
	}
	return models.UrgencyLow
}

// personCountSignal срабатывает, если среди извлечённых чисел людей
// есть значение не меньше порога
func (s *UrgencyScorer) personCountSignal(entities models.Entities) bool {
	for _, span := range entities[models.EntityPersonCount] {
		count, ok := parseCount(span)
		if ok && count >= s.personCountMin {
			return true
		}
	}
	return false
}

// keywordSignal срабатывает при вхождении любого слова эскалации
// в сырой текст или в извлечённые сущности
func (s *UrgencyScorer) keywordSignal(entities models.Entities, rawText string) bool {
	haystacks := []string{strings.ToLower(rawText)}
	for _, kind := range models.EntityKinds {
		for _, span := range entities[kind] {
			haystacks = append(haystacks, strings.ToLower(span))
		}
	}
	for _, keyword := range s.escalationKeywords {
		for _, haystack := range haystacks {
			if strings.Contains(haystack, keyword) {
				return true
			}
		}
	}
	return false
}

// parseCount вытаскивает число из извлечённой подстроки ("12", "12 people")
func parseCount(span string) (int, bool) {
	if count, err := strconv.Atoi(strings.TrimSpace(span)); err == nil {
		return count, true
	}
	if digits := digitsPattern.FindString(span); digits != "" {
		if count, err := strconv.Atoi(digits); err == nil {
			return count, true
		}
	}
	return 0, false
}
