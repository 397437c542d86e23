package ml

import (
	"context"
	"regexp"
	"strings"

	"github.com/shenikar/disaster_triage_system/internal/models"
)

// entityLabels - метки zero-shot экстрактора в порядке models.EntityKinds
var entityLabels = []string{"Location", "Urgency", "Resource_Needed", "Person_Count", "Contact_Info"}

var (
	// Телефонообразные токены ловим регуляркой отдельно: статистический
	// экстрактор их часто пропускает
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-()]{7,}\d`)

	// Числа людей: "12 people", "3 families"
	personCountPattern = regexp.MustCompile(`(\d+)\s*(people|persons|families|ppl)`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

type extractEntitiesRequest struct {
	Text      string   `json:"text"`
	Labels    []string `json:"labels"`
	Threshold float64  `json:"threshold"`
}

type extractEntitiesResponse struct {
	Entities []struct {
		Label string  `json:"label"`
		Text  string  `json:"text"`
		Score float64 `json:"score"`
	} `json:"entities"`
}

// ExtractEntities извлекает типизированные сущности из свободного текста.
// Текст может быть обрывочным и смешанным по языку. Пустой или вырожденный
// текст - не ошибка: возвращается пустой набор без обращения к модели.
func (c *Client) ExtractEntities(ctx context.Context, text string) (models.Entities, error) {
	entities := make(models.Entities)

	cleaned := preprocessText(text)
	if cleaned == "" {
		return entities, nil
	}

	req := extractEntitiesRequest{
		Text:      cleaned,
		Labels:    entityLabels,
		Threshold: c.entityThreshold,
	}
	var resp extractEntitiesResponse
	if err := c.postJSON(ctx, "/extract-entities", req, &resp); err != nil {
		return nil, err
	}

	for _, span := range resp.Entities {
		kind, ok := kindFromLabel(span.Label)
		if !ok {
			continue
		}
		entities[kind] = append(entities[kind], span.Text)
	}

	// Регулярки дополняют модель, а не заменяют её
	for _, phone := range phonePattern.FindAllString(text, -1) {
		entities[models.EntityContactInfo] = append(entities[models.EntityContactInfo], phone)
	}
	for _, match := range personCountPattern.FindAllStringSubmatch(strings.ToLower(text), -1) {
		entities[models.EntityPersonCount] = append(entities[models.EntityPersonCount], match[1])
	}

	for kind, spans := range entities {
		entities[kind] = dedupeSpans(spans)
	}
	return entities, nil
}

// kindFromLabel сопоставляет метку модели закрытому перечню видов сущностей
func kindFromLabel(label string) (models.EntityKind, bool) {
	switch strings.ToLower(label) {
	case "location":
		return models.EntityLocation, true
	case "urgency":
		return models.EntityUrgency, true
	case "resource_needed":
		return models.EntityResourceNeeded, true
	case "person_count":
		return models.EntityPersonCount, true
	case "contact_info":
		return models.EntityContactInfo, true
	}
	return "", false
}

// preprocessText убирает лишние пробелы и мусорные символы из сырого сообщения
func preprocessText(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// dedupeSpans убирает повторы, сравнивая нормализованные подстроки,
// порядок первых вхождений сохраняется
func dedupeSpans(spans []string) []string {
	seen := make(map[string]struct{}, len(spans))
	result := make([]string, 0, len(spans))
	for _, span := range spans {
		key := strings.ToLower(strings.TrimSpace(span))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, strings.TrimSpace(span))
	}
	return result
}
