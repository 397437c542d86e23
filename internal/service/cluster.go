package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_triage_system/internal/config"
	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Границы приоритета для рекомендуемого действия
const (
	actionDispatchThreshold   = 0.8
	actionPrioritizeThreshold = 0.6
	actionMonitorThreshold    = 0.4
)

// clusterCountSaturation - число инцидентов, при котором вклад размера
// кластера в приоритет достигает максимума
const clusterCountSaturation = 10.0

const noise = -1

// ClusterService определяет контракт пакетной кластеризации открытых инцидентов
type ClusterService interface {
	// RunClusteringPass выполняет один идемпотентный проход по снимку
	// открытых инцидентов. Конкурентные вызовы коалесцируются.
	RunClusteringPass(ctx context.Context) (*models.ClusterSnapshot, error)

	// LatestSnapshot возвращает результат последнего прохода;
	// при холодном кеше выполняется один проход.
	LatestSnapshot(ctx context.Context) (*models.ClusterSnapshot, error)
}

type clusterService struct {
	repo   IncidentRepository
	logger *logrus.Logger
	cfg    *config.Config
	group  singleflight.Group
}

// NewClusterService создает сервис плотностной кластеризации
func NewClusterService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config) ClusterService {
	return &clusterService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// RunClusteringPass кластеризует снимок открытых инцидентов DBSCAN-проходом
// в градусном пространстве, сохраняет назначения и кеширует сводку.
// Идентификаторы кластеров стабильны только внутри одного прохода.
func (s *clusterService) RunClusteringPass(ctx context.Context) (*models.ClusterSnapshot, error) {
	result, err, _ := s.group.Do("clustering_pass", func() (any, error) {
		return s.runPass(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.ClusterSnapshot), nil
}

func (s *clusterService) runPass(ctx context.Context) (*models.ClusterSnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "cluster",
		"method":  "RunClusteringPass",
	})
	log.Info("Starting clustering pass")

	incidents, err := s.repo.ListOpenForClustering(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to snapshot open incidents")
		return nil, fmt.Errorf("service: could not snapshot open incidents: %w", err)
	}

	labels := dbscan(incidents, s.cfg.ClusterEpsDegrees, s.cfg.ClusterMinPoints)

	now := time.Now().UTC()
	assignments := make(map[uuid.UUID]*int, len(incidents))
	members := make(map[int][]*models.Incident)
	unclustered := 0
	for i, incident := range incidents {
		if labels[i] == noise {
			assignments[incident.ID] = nil
			unclustered++
			continue
		}
		clusterID := labels[i]
		assignments[incident.ID] = &clusterID
		members[clusterID] = append(members[clusterID], incident)
	}

	if err := s.repo.UpdateClusterAssignments(ctx, assignments); err != nil {
		log.WithError(err).Error("Failed to persist cluster assignments")
		return nil, fmt.Errorf("service: could not persist cluster assignments: %w", err)
	}

	snapshot := &models.ClusterSnapshot{
		Clusters:         make([]models.Cluster, 0, len(members)),
		UnclusteredCount: unclustered,
		TotalOpen:        len(incidents),
		Eps:              s.cfg.ClusterEpsDegrees,
		MinPoints:        s.cfg.ClusterMinPoints,
		ComputedAt:       now,
	}
	for clusterID, clusterMembers := range members {
		snapshot.Clusters = append(snapshot.Clusters, s.summarize(clusterID, clusterMembers, now))
	}
	sortClustersByPriority(snapshot.Clusters)

	if err := s.repo.SetClusterSnapshot(ctx, snapshot); err != nil {
		// Снимок - кеш для чтения; его потеря не отменяет сам проход
		log.WithError(err).Warn("Failed to cache cluster snapshot")
	}

	log.WithFields(logrus.Fields{
		"total_open":     snapshot.TotalOpen,
		"total_clusters": len(snapshot.Clusters),
		"unclustered":    snapshot.UnclusteredCount,
	}).Info("Clustering pass completed")
	return snapshot, nil
}

// LatestSnapshot отдаёт кешированный результат последнего прохода
func (s *clusterService) LatestSnapshot(ctx context.Context) (*models.ClusterSnapshot, error) {
	snapshot, err := s.repo.GetClusterSnapshot(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read cluster snapshot from cache")
	}
	if snapshot != nil {
		return snapshot, nil
	}
	return s.RunClusteringPass(ctx)
}

// summarize собирает сводку одного кластера: центроид, доминирующий тип,
// размер и приоритет
func (s *clusterService) summarize(clusterID int, clusterMembers []*models.Incident, now time.Time) models.Cluster {
	var sumLat, sumLon float64
	ids := make([]uuid.UUID, 0, len(clusterMembers))
	for _, m := range clusterMembers {
		sumLat += m.Latitude
		sumLon += m.Longitude
		ids = append(ids, m.ID)
	}
	count := len(clusterMembers)

	priority := s.priority(clusterMembers, now)
	return models.Cluster{
		ID:              clusterID,
		CenterLatitude:  sumLat / float64(count),
		CenterLongitude: sumLon / float64(count),
		DominantType:    dominantType(clusterMembers),
		IncidentCount:   count,
		Priority:        priority,
		Action:          recommendedAction(priority),
		IncidentIDs:     ids,
	}
}

// priority - взвешенная свёртка размера кластера, доли срочных инцидентов
// и свежести, ограниченная отрезком [0,1]. Монотонна по размеру и доле срочных.
func (s *clusterService) priority(clusterMembers []*models.Incident, now time.Time) float64 {
	count := len(clusterMembers)
	if count == 0 {
		return 0
	}

	countNorm := math.Min(float64(count)/clusterCountSaturation, 1.0)

	urgent := 0
	newest := clusterMembers[0].CreatedAt
	for _, m := range clusterMembers {
		if m.Urgency == models.UrgencyCritical || m.Urgency == models.UrgencyHigh {
			urgent++
		}
		if m.CreatedAt.After(newest) {
			newest = m.CreatedAt
		}
	}
	urgentFrac := float64(urgent) / float64(count)

	window := time.Duration(s.cfg.DashboardWindowHours) * time.Hour
	recency := 1.0 - now.Sub(newest).Hours()/window.Hours()
	recency = math.Max(0, math.Min(1, recency))

	p := s.cfg.PriorityWeightCount*countNorm +
		s.cfg.PriorityWeightUrgency*urgentFrac +
		s.cfg.PriorityWeightRecency*recency
	return math.Max(0, math.Min(1, p))
}

// recommendedAction переводит приоритет в действие по фиксированным границам
func recommendedAction(priority float64) models.RecommendedAction {
	switch {
	case priority >= actionDispatchThreshold:
		return models.ActionDispatchImmediately
	case priority >= actionPrioritizeThreshold:
		return models.ActionPrioritizeResponse
	case priority >= actionMonitorThreshold:
		return models.ActionMonitor
	}
	return models.ActionRoutine
}

// dominantType - самый частый тип среди участников; при равенстве побеждает
// тип самого раннего отчёта
func dominantType(clusterMembers []*models.Incident) models.IncidentType {
	counts := make(map[models.IncidentType]int)
	earliest := make(map[models.IncidentType]time.Time)
	for _, m := range clusterMembers {
		counts[m.Type]++
		if first, ok := earliest[m.Type]; !ok || m.CreatedAt.Before(first) {
			earliest[m.Type] = m.CreatedAt
		}
	}

	var result models.IncidentType
	bestCount := -1
	for t, c := range counts {
		if c > bestCount || (c == bestCount && earliest[t].Before(earliest[result])) {
			result = t
			bestCount = c
		}
	}
	return result
}

// sortClustersByPriority упорядочивает кластеры по убыванию приоритета,
// при равенстве - по размеру и идентификатору для детерминизма
func sortClustersByPriority(clusters []models.Cluster) {
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Priority != clusters[j].Priority {
			return clusters[i].Priority > clusters[j].Priority
		}
		if clusters[i].IncidentCount != clusters[j].IncidentCount {
			return clusters[i].IncidentCount > clusters[j].IncidentCount
		}
		return clusters[i].ID < clusters[j].ID
	})
}

// dbscan выполняет плотностную кластеризацию в градусном пространстве.
// Возвращает метку кластера для каждого инцидента, -1 - шум. Точка считается
// ядровой при minPoints соседях включая саму себя; кластеры растут транзитивно
// через окрестности ядровых точек. Планарная аппроксимация: на высоких
// широтах расстояния в градусах искажаются.
func dbscan(incidents []*models.Incident, eps float64, minPoints int) []int {
	n := len(incidents)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = noise
	}

	visited := make([]bool, n)
	nextCluster := 0

	neighborsOf := func(idx int) []int {
		var result []int
		for j := 0; j < n; j++ {
			if euclidean(incidents[idx], incidents[j]) <= eps {
				result = append(result, j)
			}
		}
		return result
	}

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := neighborsOf(i)
		if len(neighbors) < minPoints {
			continue // Пока шум; может быть присоединена как граничная точка
		}

		clusterID := nextCluster
		nextCluster++
		labels[i] = clusterID

		// Расширение кластера: очередь окрестностей ядровых точек
		queue := append([]int(nil), neighbors...)
		for head := 0; head < len(queue); head++ {
			j := queue[head]
			if labels[j] == noise {
				labels[j] = clusterID
			}
			if visited[j] {
				continue
			}
			visited[j] = true

			jNeighbors := neighborsOf(j)
			if len(jNeighbors) >= minPoints {
				queue = append(queue, jNeighbors...)
			}
		}
	}

	return labels
}

// euclidean - расстояние между инцидентами в градусном пространстве
func euclidean(a, b *models.Incident) float64 {
	dLat := a.Latitude - b.Latitude
	dLon := a.Longitude - b.Longitude
	return math.Sqrt(dLat*dLat + dLon*dLon)
}
