package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_triage_system/internal/config"
	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClusterService(t *testing.T) (*clusterService, *MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ClusterEpsDegrees:     0.005,
		ClusterMinPoints:      3,
		PriorityWeightCount:   0.4,
		PriorityWeightUrgency: 0.4,
		PriorityWeightRecency: 0.2,
		DashboardWindowHours:  24,
	}

	service := NewClusterService(repoMock, logger, cfg)
	return service.(*clusterService), repoMock
}

func floodIncident(lat, lon float64, urgency models.UrgencyLevel, createdAt time.Time) *models.Incident {
	return &models.Incident{
		ID:        uuid.New(),
		Latitude:  lat,
		Longitude: lon,
		Type:      models.TypeFlood,
		Status:    models.StatusPending,
		Urgency:   urgency,
		CreatedAt: createdAt,
	}
}

func TestRunClusteringPass_GroupsNearbyIncidents(t *testing.T) {
	// Подготовка
	service, repoMock := newTestClusterService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Три затопления в пределах пары сотен метров и один дальний инцидент
	nearby := []*models.Incident{
		floodIncident(40.7100, -74.0000, models.UrgencyHigh, now),
		floodIncident(40.7120, -74.0000, models.UrgencyCritical, now),
		floodIncident(40.7110, -74.0010, models.UrgencyHigh, now),
	}
	far := floodIncident(40.8000, -74.2000, models.UrgencyLow, now)
	open := append(append([]*models.Incident{}, nearby...), far)

	var savedAssignments map[uuid.UUID]*int

	// Ожидания
	repoMock.EXPECT().ListOpenForClustering(ctx).Return(open, nil).Times(1)
	repoMock.EXPECT().
		UpdateClusterAssignments(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, assignments map[uuid.UUID]*int) error {
			savedAssignments = assignments
			return nil
		}).Times(1)
	repoMock.EXPECT().SetClusterSnapshot(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	snapshot, err := service.RunClusteringPass(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, snapshot.Clusters, 1)
	assert.Equal(t, 4, snapshot.TotalOpen)
	assert.Equal(t, 1, snapshot.UnclusteredCount)

	cluster := snapshot.Clusters[0]
	assert.Equal(t, 3, cluster.IncidentCount)
	assert.Equal(t, models.TypeFlood, cluster.DominantType)
	assert.Len(t, cluster.IncidentIDs, 3)
	assert.InDelta(t, 40.7110, cluster.CenterLatitude, 1e-4)
	assert.InDelta(t, -74.00033, cluster.CenterLongitude, 1e-4)

	// Все участники - срочные, поэтому рекомендуется приоритетный выезд
	// priority = 0.4*(3/10) + 0.4*1.0 + 0.2*1.0 = 0.72
	assert.InDelta(t, 0.72, cluster.Priority, 1e-6)
	assert.Equal(t, models.ActionPrioritizeResponse, cluster.Action)

	// Назначения: трое в кластере, дальний инцидент - шум
	require.Len(t, savedAssignments, 4)
	for _, incident := range nearby {
		require.NotNil(t, savedAssignments[incident.ID])
		assert.Equal(t, cluster.ID, *savedAssignments[incident.ID])
	}
	assert.Nil(t, savedAssignments[far.ID])
}

func TestRunClusteringPass_TooFewNeighbors_AllNoise(t *testing.T) {
	// Подготовка
	service, repoMock := newTestClusterService(t)
	ctx := context.Background()
	now := time.Now().UTC()

	// Две точки рядом, но minPoints=3 требует минимум три
	open := []*models.Incident{
		floodIncident(40.7100, -74.0000, models.UrgencyHigh, now),
		floodIncident(40.7110, -74.0000, models.UrgencyHigh, now),
	}

	// Ожидания
	repoMock.EXPECT().ListOpenForClustering(ctx).Return(open, nil).Times(1)
	repoMock.EXPECT().UpdateClusterAssignments(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SetClusterSnapshot(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	snapshot, err := service.RunClusteringPass(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, snapshot.Clusters)
	assert.Equal(t, 2, snapshot.UnclusteredCount)
}

func TestRunClusteringPass_EmptyInput(t *testing.T) {
	// Подготовка
	service, repoMock := newTestClusterService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListOpenForClustering(ctx).Return([]*models.Incident{}, nil).Times(1)
	repoMock.EXPECT().UpdateClusterAssignments(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SetClusterSnapshot(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	snapshot, err := service.RunClusteringPass(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, snapshot.Clusters)
	assert.Equal(t, 0, snapshot.TotalOpen)
}

func TestLatestSnapshot_CacheHit_NoPass(t *testing.T) {
	// Подготовка
	service, repoMock := newTestClusterService(t)
	ctx := context.Background()
	cached := &models.ClusterSnapshot{
		TotalOpen:  7,
		ComputedAt: time.Now().UTC(),
	}

	// Ожидания: проход кластеризации не запускается
	repoMock.EXPECT().GetClusterSnapshot(ctx).Return(cached, nil).Times(1)
	repoMock.EXPECT().ListOpenForClustering(gomock.Any()).Times(0)

	// Действие
	snapshot, err := service.LatestSnapshot(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, snapshot)
}

func TestLatestSnapshot_ColdCache_RunsPass(t *testing.T) {
	// Подготовка
	service, repoMock := newTestClusterService(t)
	ctx := context.Background()

	// Ожидания: холодный кеш запускает один проход
	repoMock.EXPECT().GetClusterSnapshot(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListOpenForClustering(ctx).Return([]*models.Incident{}, nil).Times(1)
	repoMock.EXPECT().UpdateClusterAssignments(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().SetClusterSnapshot(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	snapshot, err := service.LatestSnapshot(ctx)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, 0, snapshot.TotalOpen)
}

func TestRecommendedAction_Thresholds(t *testing.T) {
	tests := []struct {
		priority float64
		expected models.RecommendedAction
	}{
		{0.95, models.ActionDispatchImmediately},
		{0.8, models.ActionDispatchImmediately},
		{0.7, models.ActionPrioritizeResponse},
		{0.6, models.ActionPrioritizeResponse},
		{0.5, models.ActionMonitor},
		{0.4, models.ActionMonitor},
		{0.1, models.ActionRoutine},
		{0.0, models.ActionRoutine},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, recommendedAction(tt.priority), "priority %v", tt.priority)
	}
}

func TestDominantType_TieBreaksToEarliestReport(t *testing.T) {
	now := time.Now().UTC()
	clusterMembers := []*models.Incident{
		{Type: models.TypeFire, CreatedAt: now.Add(-time.Hour)},
		{Type: models.TypeFlood, CreatedAt: now.Add(-2 * time.Hour)},
		{Type: models.TypeFire, CreatedAt: now},
		{Type: models.TypeFlood, CreatedAt: now},
	}

	// При равенстве частот побеждает тип самого раннего отчёта
	assert.Equal(t, models.TypeFlood, dominantType(clusterMembers))
}

func TestDBScan_Deterministic(t *testing.T) {
	now := time.Now().UTC()
	incidents := []*models.Incident{
		floodIncident(40.7100, -74.0000, models.UrgencyHigh, now),
		floodIncident(40.7120, -74.0000, models.UrgencyHigh, now),
		floodIncident(40.7110, -74.0010, models.UrgencyHigh, now),
		floodIncident(41.0000, -75.0000, models.UrgencyLow, now),
	}

	first := dbscan(incidents, 0.005, 3)
	second := dbscan(incidents, 0.005, 3)

	// Один и тот же снимок даёт одну и ту же разметку
	assert.Equal(t, first, second)
	assert.Equal(t, noise, first[3])
	assert.Equal(t, first[0], first[1])
	assert.Equal(t, first[0], first[2])
	assert.NotEqual(t, noise, first[0])
}

func TestSortClustersByPriority_Deterministic(t *testing.T) {
	clusters := []models.Cluster{
		{ID: 2, Priority: 0.5, IncidentCount: 3},
		{ID: 0, Priority: 0.9, IncidentCount: 4},
		{ID: 1, Priority: 0.5, IncidentCount: 5},
	}

	sortClustersByPriority(clusters)

	assert.Equal(t, []int{0, 1, 2}, []int{clusters[0].ID, clusters[1].ID, clusters[2].ID})
}
