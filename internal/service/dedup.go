package service

import (
	"context"

	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/sirupsen/logrus"
)

// DuplicateDetector решает, дублирует ли новый отчёт уже известный инцидент.
// Кандидаты ограничиваются открытыми инцидентами в гео-окрестности точки:
// визуально похожие, но географически несвязанные снимки дубликатами не считаются.
type DuplicateDetector struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	threshold float64
	geoRadius float64
}

// NewDuplicateDetector создает детектор с порогом косинусной близости
// и радиусом гео-префильтра в градусах
func NewDuplicateDetector(repo IncidentRepository, logger *logrus.Logger, threshold, geoRadius float64) *DuplicateDetector {
	return &DuplicateDetector{
		repo:      repo,
		logger:    logger,
		threshold: threshold,
		geoRadius: geoRadius,
	}
}

// Detect возвращает канонический инцидент с максимальной близостью не ниже порога,
// либо nil. Недоступность индекса трактуется как "дубликат не найден" (fail-open):
// доступность триажа важнее точности дедупликации.
func (d *DuplicateDetector) Detect(ctx context.Context, embedding []float32, lat, lon float64) *models.DuplicateMatch {
	log := d.logger.WithFields(logrus.Fields{
		"service": "dedup",
		"method":  "Detect",
	})

	if len(embedding) == 0 {
		return nil
	}

	candidates, err := d.repo.FindEmbeddingCandidates(ctx, lat, lon, d.geoRadius)
	if err != nil {
		log.WithError(err).Warn("Similarity index unavailable, treating report as non-duplicate")
		return nil
	}

	var best *models.Incident
	var bestSimilarity float64
	for _, candidate := range candidates {
		// Индекс отдаёт только недубликаты; цепочка duplicate_of -> duplicate_of
		// означает нарушенный инвариант хранилища
		if candidate.IsDuplicate {
			log.WithField("candidate_id", candidate.ID).
				WithError(models.ErrInconsistentReference).
				Error("Duplicate candidate returned by index, skipping")
			continue
		}
		if len(candidate.Embedding) != len(embedding) {
			continue
		}

		similarity := dotProduct(embedding, candidate.Embedding)
		switch {
		case best == nil || similarity > bestSimilarity:
			best = candidate
			bestSimilarity = similarity
		case similarity == bestSimilarity && candidate.CreatedAt.Before(best.CreatedAt):
			// При равной близости канонической считается самая ранняя запись
			best = candidate
		}
	}

	if best == nil || bestSimilarity < d.threshold {
		return nil
	}

	return &models.DuplicateMatch{
		IncidentID: best.ID,
		Similarity: bestSimilarity,
	}
}

// dotProduct - косинусная близость L2-нормированных векторов
func dotProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
