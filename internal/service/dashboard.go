package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/shenikar/disaster_triage_system/internal/config"
	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/sirupsen/logrus"
)

// topAreaGridPrecision - округление координат до 2 знаков, ячейка ~1 км
const topAreaGridPrecision = 100.0

// DashboardService определяет контракт read-only проекций для дашборда.
// Все проекции - чистые функции сохранённого состояния; чтение не блокирует
// приём отчётов, допустима слабая согласованность.
type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
	GetTimeline(ctx context.Context, days int) ([]models.TimelineBucket, error)
	GetClusters(ctx context.Context) (*models.ClusterSnapshot, error)
	GetTopAreas(ctx context.Context, hours, limit int) ([]models.AreaBucket, error)
}

type dashboardService struct {
	repo     IncidentRepository
	clusters ClusterService
	logger   *logrus.Logger
	cfg      *config.Config
}

// NewDashboardService создает сервис агрегатов дашборда
func NewDashboardService(repo IncidentRepository, clusters ClusterService, logger *logrus.Logger, cfg *config.Config) DashboardService {
	return &dashboardService{
		repo:     repo,
		clusters: clusters,
		logger:   logger,
		cfg:      cfg,
	}
}

// GetStats возвращает сводные счётчики; результат недолго кешируется в Redis
func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dashboard",
		"method":  "GetStats",
	})

	if cached, err := s.repo.GetStatsFromCache(ctx); err != nil {
		log.WithError(err).Warn("Stats cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	statusCounts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count by status: %w", err)
	}
	typeCounts, err := s.repo.TypeCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count by type: %w", err)
	}
	urgencyCounts, err := s.repo.UrgencyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count by urgency: %w", err)
	}
	critical, err := s.repo.CountCriticalOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count critical incidents: %w", err)
	}
	last24h, err := s.repo.CountCreatedSince(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("service: could not count recent incidents: %w", err)
	}

	stats := &models.DashboardStats{
		PendingIncidents:  statusCounts[models.StatusPending],
		VerifiedIncidents: statusCounts[models.StatusVerified],
		ResolvedIncidents: statusCounts[models.StatusResolved],
		RejectedIncidents: statusCounts[models.StatusRejected],
		CriticalIncidents: critical,
		IncidentsLast24h:  last24h,
		ByType:            typeCounts,
		ByUrgency:         urgencyCounts,
	}
	for _, count := range statusCounts {
		stats.TotalIncidents += count
	}
	stats.MostCommonType = mostCommonType(typeCounts)

	// Счётчик активных кластеров берём из последнего снимка кластеризации
	if snapshot, err := s.repo.GetClusterSnapshot(ctx); err != nil {
		log.WithError(err).Warn("Cluster snapshot read failed")
	} else if snapshot != nil {
		stats.ActiveClusters = len(snapshot.Clusters)
	}

	if err := s.repo.SetStatsCache(ctx, stats); err != nil {
		log.WithError(err).Warn("Stats cache write failed")
	}
	return stats, nil
}

// GetTimeline возвращает дневные счётчики за days дней с разбивкой по типам
func (s *dashboardService) GetTimeline(ctx context.Context, days int) ([]models.TimelineBucket, error) {
	if days < 1 {
		days = s.cfg.TimelineDays
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	rows, err := s.repo.TimelineCounts(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not build timeline: %w", err)
	}

	buckets := make(map[string]*models.TimelineBucket)
	for _, row := range rows {
		date := row.Day.Format("2006-01-02")
		bucket, ok := buckets[date]
		if !ok {
			bucket = &models.TimelineBucket{
				Date:   date,
				ByType: make(map[models.IncidentType]int),
			}
			buckets[date] = bucket
		}
		bucket.Total += row.Count
		bucket.ByType[row.Type] += row.Count
	}

	timeline := make([]models.TimelineBucket, 0, len(buckets))
	for _, bucket := range buckets {
		timeline = append(timeline, *bucket)
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Date < timeline[j].Date
	})
	return timeline, nil
}

// GetClusters возвращает кластеры последнего прохода, ранжированные по приоритету
func (s *dashboardService) GetClusters(ctx context.Context) (*models.ClusterSnapshot, error) {
	snapshot, err := s.clusters.LatestSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get cluster snapshot: %w", err)
	}
	return snapshot, nil
}

// GetTopAreas возвращает самые нагруженные координатные ячейки за окно hours
func (s *dashboardService) GetTopAreas(ctx context.Context, hours, limit int) ([]models.AreaBucket, error) {
	if hours < 1 {
		hours = s.cfg.DashboardWindowHours
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	since := time.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	incidents, err := s.repo.ListCreatedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not list recent incidents: %w", err)
	}

	type gridKey struct {
		lat, lon float64
	}
	areas := make(map[gridKey]*models.AreaBucket)
	for _, incident := range incidents {
		if incident.Status == models.StatusRejected {
			continue
		}
		key := gridKey{
			lat: roundToGrid(incident.Latitude),
			lon: roundToGrid(incident.Longitude),
		}
		bucket, ok := areas[key]
		if !ok {
			bucket = &models.AreaBucket{
				Latitude:  key.lat,
				Longitude: key.lon,
				ByType:    make(map[models.IncidentType]int),
			}
			areas[key] = bucket
		}
		bucket.Count++
		bucket.ByType[incident.Type]++
	}

	result := make([]models.AreaBucket, 0, len(areas))
	for _, bucket := range areas {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		if result[i].Latitude != result[j].Latitude {
			return result[i].Latitude < result[j].Latitude
		}
		return result[i].Longitude < result[j].Longitude
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// mostCommonType - тип с максимальным числом инцидентов
func mostCommonType(typeCounts map[models.IncidentType]int) models.IncidentType {
	var result models.IncidentType
	best := 0
	for t, count := range typeCounts {
		if count > best || (count == best && string(t) < string(result)) {
			result = t
			best = count
		}
	}
	return result
}

// roundToGrid огрубляет координату до ячейки сетки
func roundToGrid(coord float64) float64 {
	return math.Round(coord*topAreaGridPrecision) / topAreaGridPrecision
}
