package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/shenikar/disaster_triage_system/internal/service"
)

const (
	statsCacheKey      = "dashboard:stats"
	clusterSnapshotKey = "clusters:latest"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// incidentColumns - общий список колонок для выборок инцидентов
const incidentColumns = `
	id,
	latitude,
	longitude,
	title,
	description,
	incident_type,
	status,
	urgency_level,
	embedding,
	extracted_entities,
	is_duplicate,
	duplicate_of,
	duplicate_similarity,
	cluster_id,
	COALESCE(reporter_name, ''),
	COALESCE(reporter_contact, ''),
	COALESCE(image_url, ''),
	COALESCE(verification_notes, ''),
	created_at,
	updated_at,
	resolved_at`

// scanIncident читает одну строку выборки в модель
func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var embedding *pgvector.Vector
	var entitiesJSON []byte

	err := row.Scan(
		&incident.ID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Title,
		&incident.Description,
		&incident.Type,
		&incident.Status,
		&incident.Urgency,
		&embedding,
		&entitiesJSON,
		&incident.IsDuplicate,
		&incident.DuplicateOf,
		&incident.DuplicateSimilarity,
		&incident.ClusterID,
		&incident.ReporterName,
		&incident.ReporterContact,
		&incident.ImageURL,
		&incident.VerificationNotes,
		&incident.CreatedAt,
		&incident.UpdatedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if embedding != nil {
		incident.Embedding = embedding.Slice()
	}
	if len(entitiesJSON) > 0 {
		if err := json.Unmarshal(entitiesJSON, &incident.Entities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal extracted entities: %w", err)
		}
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд.
// Эмбеддинг нормализован на вставке, поэтому запрос близости - скалярное произведение.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	var embedding any
	if incident.Embedding != nil {
		embedding = pgvector.NewVector(incident.Embedding)
	}

	var entitiesJSON any
	if incident.Entities != nil {
		data, err := json.Marshal(incident.Entities)
		if err != nil {
			return fmt.Errorf("failed to marshal extracted entities: %w", err)
		}
		entitiesJSON = data
	}

	query := `
		INSERT INTO incidents (
			latitude, longitude, title, description, incident_type, status, urgency_level,
			embedding, extracted_entities, is_duplicate, duplicate_of, duplicate_similarity,
			reporter_name, reporter_contact, image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULLIF($13, ''), NULLIF($14, ''), NULLIF($15, ''))
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Latitude,
		incident.Longitude,
		incident.Title,
		incident.Description,
		incident.Type,
		incident.Status,
		incident.Urgency,
		embedding,
		entitiesJSON,
		incident.IsDuplicate,
		incident.DuplicateOf,
		incident.DuplicateSimilarity,
		incident.ReporterName,
		incident.ReporterContact,
		incident.ImageURL,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List возвращает список инцидентов с фильтрами и пагинацией
func (r *IncidentRepository) List(ctx context.Context, filter service.ListFilter) ([]*models.Incident, int, error) {
	where := " WHERE 1=1"
	args := []any{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND incident_type = $%d", len(args))
	}
	if filter.Urgency != "" {
		args = append(args, filter.Urgency)
		where += fmt.Sprintf(" AND urgency_level = $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM incidents` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)
	query := `SELECT ` + incidentColumns + ` FROM incidents` + where +
		fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents, err := collectIncidents(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan incident rows: %w", err)
	}
	return incidents, total, nil
}

// UpdateStatus переводит инцидент в новый статус. Закрытие проставляет
// resolved_at и снимает привязку к кластеру: закрытые инциденты в кластеры не входят.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus, notes string) error {
	query := `
		UPDATE incidents SET
			status = $2,
			verification_notes = COALESCE(NULLIF($3, ''), verification_notes),
			resolved_at = CASE WHEN $2 = 'resolved' THEN NOW() ELSE resolved_at END,
			cluster_id = CASE WHEN $2 = 'resolved' THEN NULL ELSE cluster_id END,
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id, status, notes)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for status update: %w", id, models.ErrNotFound)
	}
	return nil
}

// UpdateDetails применяет частичную правку полей инцидента.
// Сервис гарантирует, что правка непуста и значения прошли валидацию.
func (r *IncidentRepository) UpdateDetails(ctx context.Context, id uuid.UUID, upd service.IncidentUpdate) error {
	set := "updated_at = NOW()"
	args := []any{id}
	if upd.Title != nil {
		args = append(args, *upd.Title)
		set += fmt.Sprintf(", title = $%d", len(args))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		set += fmt.Sprintf(", description = $%d", len(args))
	}
	if upd.Type != nil {
		args = append(args, *upd.Type)
		set += fmt.Sprintf(", incident_type = $%d", len(args))
	}
	if upd.Urgency != nil {
		args = append(args, *upd.Urgency)
		set += fmt.Sprintf(", urgency_level = $%d", len(args))
	}

	query := `UPDATE incidents SET ` + set + ` WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update incident details: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update: %w", id, models.ErrNotFound)
	}
	return nil
}

// FindEmbeddingCandidates возвращает открытые недубликаты с эмбеддингом
// в прямоугольной окрестности точки - кандидатов для сравнения векторов
func (r *IncidentRepository) FindEmbeddingCandidates(ctx context.Context, lat, lon, radiusDegrees float64) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE
			status != 'resolved'
			AND is_duplicate = FALSE
			AND embedding IS NOT NULL
			AND latitude BETWEEN $1 - $3 AND $1 + $3
			AND longitude BETWEEN $2 - $3 AND $2 + $3
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, lat, lon, radiusDegrees)
	if err != nil {
		return nil, fmt.Errorf("failed to find embedding candidates: %w", models.ErrIndexUnavailable)
	}
	defer rows.Close()

	incidents, err := collectIncidents(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan embedding candidates: %w", err)
	}
	return incidents, nil
}

// ListOpenForClustering возвращает снимок открытых инцидентов для прохода кластеризации
func (r *IncidentRepository) ListOpenForClustering(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM incidents
		WHERE status NOT IN ('resolved', 'rejected')
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list open incidents: %w", err)
	}
	defer rows.Close()

	incidents, err := collectIncidents(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan open incidents: %w", err)
	}
	return incidents, nil
}

// UpdateClusterAssignments записывает результат прохода кластеризации одним батчем
func (r *IncidentRepository) UpdateClusterAssignments(ctx context.Context, assignments map[uuid.UUID]*int) error {
	if len(assignments) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for id, clusterID := range assignments {
		batch.Queue(`UPDATE incidents SET cluster_id = $1, updated_at = NOW() WHERE id = $2;`, clusterID, id)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range assignments {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to update cluster assignments: %w", err)
		}
	}
	return nil
}

// StatusCounts возвращает количество инцидентов по статусам
func (r *IncidentRepository) StatusCounts(ctx context.Context) (map[models.IncidentStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM incidents GROUP BY status;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.IncidentStatus]int)
	for rows.Next() {
		var status models.IncidentStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating status counts: %w", err)
	}
	return counts, nil
}

// TypeCounts возвращает количество инцидентов по типам
func (r *IncidentRepository) TypeCounts(ctx context.Context) (map[models.IncidentType]int, error) {
	query := `SELECT incident_type, COUNT(*) FROM incidents GROUP BY incident_type;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by type: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.IncidentType]int)
	for rows.Next() {
		var incidentType models.IncidentType
		var count int
		if err := rows.Scan(&incidentType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan type count row: %w", err)
		}
		counts[incidentType] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type counts: %w", err)
	}
	return counts, nil
}

// UrgencyCounts возвращает количество инцидентов по уровням срочности
func (r *IncidentRepository) UrgencyCounts(ctx context.Context) (map[models.UrgencyLevel]int, error) {
	query := `SELECT urgency_level, COUNT(*) FROM incidents GROUP BY urgency_level;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by urgency: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.UrgencyLevel]int)
	for rows.Next() {
		var urgency models.UrgencyLevel
		var count int
		if err := rows.Scan(&urgency, &count); err != nil {
			return nil, fmt.Errorf("failed to scan urgency count row: %w", err)
		}
		counts[urgency] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating urgency counts: %w", err)
	}
	return counts, nil
}

// CountCriticalOpen возвращает число незакрытых критических инцидентов
func (r *IncidentRepository) CountCriticalOpen(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM incidents WHERE urgency_level = 'critical' AND status != 'resolved';`
	var count int
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count critical incidents: %w", err)
	}
	return count, nil
}

// CountCreatedSince возвращает число инцидентов, созданных после заданного момента
func (r *IncidentRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM incidents WHERE created_at >= $1;`
	var count int
	if err := r.db.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recent incidents: %w", err)
	}
	return count, nil
}

// TimelineCounts возвращает агрегат "день x тип" начиная с заданного момента
func (r *IncidentRepository) TimelineCounts(ctx context.Context, since time.Time) ([]service.TimelineRow, error) {
	query := `
		SELECT date_trunc('day', created_at) AS day, incident_type, COUNT(*)
		FROM incidents
		WHERE created_at >= $1
		GROUP BY day, incident_type
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query timeline counts: %w", err)
	}
	defer rows.Close()

	var result []service.TimelineRow
	for rows.Next() {
		var row service.TimelineRow
		if err := rows.Scan(&row.Day, &row.Type, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan timeline row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating timeline counts: %w", err)
	}
	return result, nil
}

// ListCreatedSince возвращает инциденты, созданные после заданного момента
func (r *IncidentRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE created_at >= $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent incidents: %w", err)
	}
	defer rows.Close()

	incidents, err := collectIncidents(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan recent incidents: %w", err)
	}
	return incidents, nil
}

// GetStatsFromCache пытается получить статистику дашборда из Redis
func (r *IncidentRepository) GetStatsFromCache(ctx context.Context) (*models.DashboardStats, error) {
	val, err := r.redisClient.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	stats := &models.DashboardStats{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats from cache: %w", err)
	}
	return stats, nil
}

// SetStatsCache сохраняет статистику дашборда в Redis с коротким TTL
func (r *IncidentRepository) SetStatsCache(ctx context.Context, stats *models.DashboardStats) error {
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, statsCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}
	return nil
}

// SetClusterSnapshot сохраняет снимок последнего прохода кластеризации.
// Снимок живёт до следующего прохода, поэтому без TTL.
func (r *IncidentRepository) SetClusterSnapshot(ctx context.Context, snapshot *models.ClusterSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal cluster snapshot: %w", err)
	}
	if err := r.redisClient.Set(ctx, clusterSnapshotKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set cluster snapshot in cache: %w", err)
	}
	return nil
}

// GetClusterSnapshot возвращает снимок последнего прохода кластеризации или nil
func (r *IncidentRepository) GetClusterSnapshot(ctx context.Context) (*models.ClusterSnapshot, error) {
	val, err := r.redisClient.Get(ctx, clusterSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cluster snapshot from cache: %w", err)
	}

	snapshot := &models.ClusterSnapshot{}
	if err := json.Unmarshal(val, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cluster snapshot: %w", err)
	}
	return snapshot, nil
}

// collectIncidents читает все строки выборки в слайс моделей
func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return incidents, nil
}
