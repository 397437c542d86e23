package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_triage_system/internal/config"
	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/shenikar/disaster_triage_system/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ListFilter - параметры выборки инцидентов
type ListFilter struct {
	Status   string
	Type     string
	Urgency  string
	Page     int
	PageSize int
}

// IncidentUpdate - частичная правка инцидента оператором.
// nil-поле означает "не трогать". Статус меняется только через verify/resolve:
// у этих переходов есть побочные эффекты (resolved_at, выход из кластеризации).
type IncidentUpdate struct {
	Title       *string
	Description *string
	Type        *models.IncidentType
	Urgency     *models.UrgencyLevel
}

// Empty сообщает, что правка не затрагивает ни одного поля
func (u IncidentUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Type == nil && u.Urgency == nil
}

// TimelineRow - строка агрегата "день x тип" из хранилища
type TimelineRow struct {
	Day   time.Time
	Type  models.IncidentType
	Count int
}

// IncidentRepository определяет контракт для работы с хранилищем инцидентов
// и индексом эмбеддингов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter ListFilter) ([]*models.Incident, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus, notes string) error
	UpdateDetails(ctx context.Context, id uuid.UUID, upd IncidentUpdate) error

	// Индекс эмбеддингов: открытые недубликаты с вектором внутри гео-префильтра
	FindEmbeddingCandidates(ctx context.Context, lat, lon, radiusDegrees float64) ([]*models.Incident, error)

	// Кластеризация
	ListOpenForClustering(ctx context.Context) ([]*models.Incident, error)
	UpdateClusterAssignments(ctx context.Context, assignments map[uuid.UUID]*int) error
	SetClusterSnapshot(ctx context.Context, snapshot *models.ClusterSnapshot) error
	GetClusterSnapshot(ctx context.Context) (*models.ClusterSnapshot, error)

	// Агрегаты дашборда
	StatusCounts(ctx context.Context) (map[models.IncidentStatus]int, error)
	TypeCounts(ctx context.Context) (map[models.IncidentType]int, error)
	UrgencyCounts(ctx context.Context) (map[models.UrgencyLevel]int, error)
	CountCriticalOpen(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	TimelineCounts(ctx context.Context, since time.Time) ([]TimelineRow, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]*models.Incident, error)
	GetStatsFromCache(ctx context.Context) (*models.DashboardStats, error)
	SetStatsCache(ctx context.Context, stats *models.DashboardStats) error
}

// VisionClassifier определяет контракт адаптера классификатора изображений
type VisionClassifier interface {
	AnalyzeImage(ctx context.Context, imageBytes []byte) (*models.ImageAnalysis, error)
}

// EntityExtractor определяет контракт адаптера извлечения сущностей
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) (models.Entities, error)
}

// Report - входной отчёт о происшествии, уже доставленный HTTP-слоем
type Report struct {
	Latitude        float64
	Longitude       float64
	Title           string
	Description     string
	Type            models.IncidentType
	ReporterName    string
	ReporterContact string
	ImageBytes      []byte
	ImageURL        string
}

// IncidentService определяет контракт бизнес-логики триажа и управления инцидентами
type IncidentService interface {
	SubmitReport(ctx context.Context, report *Report) (*models.TriageResult, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter ListFilter) ([]*models.Incident, int, error)
	UpdateIncident(ctx context.Context, id uuid.UUID, upd IncidentUpdate) (*models.Incident, error)
	VerifyIncident(ctx context.Context, id uuid.UUID, verified bool, notes string) error
	ResolveIncident(ctx context.Context, id uuid.UUID) error
}

type incidentService struct {
	repo      IncidentRepository
	vision    VisionClassifier
	extractor EntityExtractor
	dedup     *DuplicateDetector
	scorer    *UrgencyScorer
	publisher webhook.AlertPublisher
	logger    *logrus.Logger
	cfg       *config.Config
}

// NewIncidentService создает сервис триажа входящих отчётов
func NewIncidentService(
	repo IncidentRepository,
	vision VisionClassifier,
	extractor EntityExtractor,
	publisher webhook.AlertPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	return &incidentService{
		repo:      repo,
		vision:    vision,
		extractor: extractor,
		dedup:     NewDuplicateDetector(repo, logger, cfg.DuplicateSimilarityThreshold, cfg.DuplicateGeoRadiusDegrees),
		scorer:    NewUrgencyScorer(cfg.UrgencyEscalationKeywords, cfg.UrgencyPersonCountMin),
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// SubmitReport проводит один отчёт через весь конвейер триажа:
// валидация -> [vision, сущности] -> дубликаты -> срочность -> сохранение.
// Отказ любой модели не прерывает приём: инцидент создаётся с отсутствующим сигналом.
func (s *incidentService) SubmitReport(ctx context.Context, report *Report) (*models.TriageResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "triage",
		"method":  "SubmitReport",
		"title":   report.Title,
	})
	log.Info("Triaging incoming report")

	if err := validateReport(report); err != nil {
		log.WithError(err).Warn("Report rejected by validation")
		return nil, err
	}

	incident := &models.Incident{
		Latitude:        report.Latitude,
		Longitude:       report.Longitude,
		Title:           report.Title,
		Description:     report.Description,
		Type:            report.Type,
		Status:          models.StatusPending,
		Urgency:         models.UrgencyLow,
		ReporterName:    report.ReporterName,
		ReporterContact: report.ReporterContact,
		ImageURL:        report.ImageURL,
	}

	// Vision и извлечение сущностей независимы - выполняем параллельно.
	// Оба этапа fail-open: недоступность модели лишь обедняет сигналы.
	var analysis *models.ImageAnalysis
	var entities models.Entities

	g, gctx := errgroup.WithContext(ctx)
	if len(report.ImageBytes) > 0 {
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(gctx, s.cfg.MLTimeout)
			defer cancel()
			result, err := s.vision.AnalyzeImage(callCtx, report.ImageBytes)
			if err != nil {
				log.WithError(err).Warn("Vision adapter failed, proceeding without image signal")
				return nil
			}
			analysis = result
			return nil
		})
	}
	g.Go(func() error {
		callCtx, cancel := context.WithTimeout(gctx, s.cfg.MLTimeout)
		defer cancel()
		result, err := s.extractor.ExtractEntities(callCtx, fmt.Sprintf("%s. %s", report.Title, report.Description))
		if err != nil {
			log.WithError(err).Warn("Entity extractor failed, proceeding without entities")
			return nil
		}
		entities = result
		return nil
	})
	_ = g.Wait() // Воркеры всегда возвращают nil: отказы поглощены выше

	var classification []models.ClassLabel
	if analysis != nil {
		classification = analysis.Labels
		incident.Embedding = analysis.Embedding
	}
	if len(entities) > 0 {
		incident.Entities = entities
	}

	// Дедупликация возможна только при наличии эмбеддинга
	var match *models.DuplicateMatch
	if incident.Embedding != nil {
		match = s.dedup.Detect(ctx, incident.Embedding, incident.Latitude, incident.Longitude)
		if match != nil {
			incident.IsDuplicate = true
			duplicateOf := match.IncidentID
			similarity := match.Similarity
			incident.DuplicateOf = &duplicateOf
			incident.DuplicateSimilarity = &similarity
			log.WithFields(logrus.Fields{
				"duplicate_of": duplicateOf,
				"similarity":   similarity,
			}).Info("Report flagged as duplicate")
		}
	}

	// Срочность считается по всем доступным сигналам; скорер тотален
	// и возвращает уровень даже при полностью отсутствующих сигналах
	incident.Urgency = s.scorer.Score(entities, classification, report.Description)

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to persist incident")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}
	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"urgency":     incident.Urgency,
	}).Info("Incident triaged and persisted")

	// Срочные инциденты уходят в канал оповещений; сбой публикации не ломает приём
	if incident.Urgency == models.UrgencyCritical || incident.Urgency == models.UrgencyHigh {
		event := webhook.AlertEvent{
			IncidentID:  incident.ID,
			Title:       incident.Title,
			Type:        incident.Type,
			Urgency:     incident.Urgency,
			Latitude:    incident.Latitude,
			Longitude:   incident.Longitude,
			IsDuplicate: incident.IsDuplicate,
			Timestamp:   time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Error("Failed to publish alert event")
		}
	}

	return &models.TriageResult{
		Incident:       incident,
		Classification: classification,
		Entities:       incident.Entities,
		Urgency:        incident.Urgency,
		Duplicate:      match,
		HasEmbedding:   incident.Embedding != nil,
	}, nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "GetIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов с фильтрами и пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, filter ListFilter) ([]*models.Incident, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "triage",
		"method":    "ListIncidents",
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})

	incidents, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, 0, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, total, nil
}

// UpdateIncident применяет частичную правку оператора и возвращает свежую запись.
// Результаты триажа (эмбеддинг, сущности, флаги дубликата) правке не подлежат.
func (s *incidentService) UpdateIncident(ctx context.Context, id uuid.UUID, upd IncidentUpdate) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	if err := validateUpdate(upd); err != nil {
		log.WithError(err).Warn("Update rejected by validation")
		return nil, err
	}

	if err := s.repo.UpdateDetails(ctx, id, upd); err != nil {
		log.WithError(err).Warn("Failed to update incident")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to re-read incident after update")
		return nil, fmt.Errorf("service: could not get updated incident: %w", err)
	}

	log.Info("Incident updated")
	return incident, nil
}

// validateUpdate проверяет структурную корректность частичной правки
func validateUpdate(upd IncidentUpdate) error {
	if upd.Empty() {
		return fmt.Errorf("update contains no fields: %w", models.ErrValidation)
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return fmt.Errorf("title cannot be blank: %w", models.ErrValidation)
	}
	if upd.Type != nil && !models.ValidIncidentType(string(*upd.Type)) {
		return fmt.Errorf("unknown incident type %q: %w", *upd.Type, models.ErrValidation)
	}
	if upd.Urgency != nil && !models.ValidUrgencyLevel(string(*upd.Urgency)) {
		return fmt.Errorf("unknown urgency level %q: %w", *upd.Urgency, models.ErrValidation)
	}
	return nil
}

// VerifyIncident подтверждает или отклоняет инцидент по результату ручной проверки
func (s *incidentService) VerifyIncident(ctx context.Context, id uuid.UUID, verified bool, notes string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "VerifyIncident",
		"incident_id": id,
		"verified":    verified,
	})
	log.Info("Attempting to verify incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to verify a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for verify: %w", id, err)
	}

	status := models.StatusVerified
	if !verified {
		status = models.StatusRejected
	}
	if err := s.repo.UpdateStatus(ctx, id, status, notes); err != nil {
		log.WithError(err).Error("Failed to update incident status")
		return fmt.Errorf("service: could not verify incident: %w", err)
	}

	log.Info("Incident verification recorded")
	return nil
}

// ResolveIncident закрывает инцидент. Запись не удаляется: история нужна
// для ссылок дубликатов и аналитики, но из кластеризации инцидент выбывает.
func (s *incidentService) ResolveIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "triage",
		"method":      "ResolveIncident",
		"incident_id": id,
	})
	log.Info("Attempting to resolve incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for resolve: %w", id, err)
	}

	if err := s.repo.UpdateStatus(ctx, id, models.StatusResolved, ""); err != nil {
		log.WithError(err).Error("Failed to resolve incident")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}

	log.Info("Incident resolved")
	return nil
}

// validateReport проверяет структурную корректность отчёта.
// Это единственная стадия, которая отклоняет запрос целиком.
func validateReport(report *Report) error {
	if strings.TrimSpace(report.Title) == "" {
		return fmt.Errorf("title is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(report.Description) == "" {
		return fmt.Errorf("description is required: %w", models.ErrValidation)
	}
	if report.Latitude < -90 || report.Latitude > 90 {
		return fmt.Errorf("latitude %f out of range: %w", report.Latitude, models.ErrValidation)
	}
	if report.Longitude < -180 || report.Longitude > 180 {
		return fmt.Errorf("longitude %f out of range: %w", report.Longitude, models.ErrValidation)
	}
	if !models.ValidIncidentType(string(report.Type)) {
		return fmt.Errorf("unknown incident type %q: %w", report.Type, models.ErrValidation)
	}
	return nil
}

// IsValidationError сообщает, была ли ошибка отклонением некорректного отчёта
func IsValidationError(err error) bool {
	return errors.Is(err, models.ErrValidation)
}
