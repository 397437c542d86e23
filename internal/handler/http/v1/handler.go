package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/disaster_triage_system/internal/config"
	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/shenikar/disaster_triage_system/internal/service"
	"github.com/sirupsen/logrus"
)

// maxImageBytes - верхняя граница размера снимка в форме отчёта
const maxImageBytes = 10 << 20

// MLHealthChecker определяет контракт проверки доступности ML-сервиса
type MLHealthChecker interface {
	Health(ctx context.Context) error
}

type Handler struct {
	incidentService  service.IncidentService
	dashboardService service.DashboardService
	clusterService   service.ClusterService
	mlHealth         MLHealthChecker
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	dashboardService service.DashboardService,
	clusterService service.ClusterService,
	mlHealth MLHealthChecker,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService:  incidentService,
		dashboardService: dashboardService,
		clusterService:   clusterService,
		mlHealth:         mlHealth,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Submit an incident report
// @Description Submit a new incident report with optional photo. The report is classified, deduplicated and scored before persisting. Requires API key.
// @Tags Incidents
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Short incident title"
// @Param description formData string true "Free-form description"
// @Param latitude formData number true "Latitude in degrees"
// @Param longitude formData number true "Longitude in degrees"
// @Param incident_type formData string true "Incident type" Enums(fire, flood, road_block, building_damage, medical, resource_shortage, other)
// @Param reporter_name formData string false "Reporter name"
// @Param reporter_contact formData string false "Reporter contact"
// @Param image formData file false "Photo of the scene"
// @Success 201 {object} TriageResponse
// @Failure 400 {object} map[string]string "Invalid request or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) submitIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "submitIncident")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := DTOToReport(input)
	if imageBytes, ok := h.readImage(c, log); ok {
		report.ImageBytes = imageBytes
	} else {
		return
	}

	result, err := h.incidentService.SubmitReport(c.Request.Context(), report)
	if err != nil {
		if service.IsValidationError(err) {
			log.WithError(err).Warn("Report rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to triage report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, TriageResultToResponse(result))
}

// readImage читает необязательную часть формы "image".
// Второй результат false означает, что ответ клиенту уже отправлен.
func (h *Handler) readImage(c *gin.Context, log *logrus.Entry) ([]byte, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		log.WithError(err).Warn("Failed to read image part")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image part"})
		return nil, false
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Warn("Failed to open image part")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image part"})
		return nil, false
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		log.WithError(err).Warn("Failed to read image bytes")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image part"})
		return nil, false
	}
	return imageBytes, true
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents with optional filters. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(pending, verified, rejected, resolved)
// @Param incident_type query string false "Filter by type"
// @Param urgency_level query string false "Filter by urgency" Enums(low, medium, high, critical)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} ListIncidentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := service.ListFilter{
		Status:   c.Query("status"),
		Type:     c.Query("incident_type"),
		Urgency:  c.Query("urgency_level"),
		Page:     page,
		PageSize: pageSize,
	}

	incidents, total, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ListIncidentsResponse{
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
		Incidents: ModelsToIncidentResponses(incidents),
	})
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Update an incident
// @Description Apply a partial edit to an incident: title, description, type or urgency. Absent fields are left untouched. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param update body UpdateIncidentRequest true "Fields to update"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [patch]
func (h *Handler) updateIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncident").WithField("id", id)

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.incidentService.UpdateIncident(c.Request.Context(), id, DTOToIncidentUpdate(input))
	if err != nil {
		if service.IsValidationError(err) {
			log.WithError(err).Warn("Update rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to update incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Verify or reject an incident
// @Description Record the result of a manual review of a pending incident. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param verdict body VerifyIncidentRequest true "Verification verdict"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/verify [post]
func (h *Handler) verifyIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "verifyIncident").WithField("id", id)

	var input VerifyIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.incidentService.VerifyIncident(c.Request.Context(), id, *input.Verified, input.Notes); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to verify incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Resolve an incident
// @Description Mark an incident as resolved. The record is kept for history but leaves clustering. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/resolve [post]
func (h *Handler) resolveIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "resolveIncident").WithField("id", id)

	if err := h.incidentService.ResolveIncident(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
			return
		}
		log.WithError(err).Error("Failed to resolve incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get dashboard statistics
// @Description Get aggregate counters over stored incidents. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.DashboardStats
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/stats [get]
func (h *Handler) getDashboardStats(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboardStats")

	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Get incident timeline
// @Description Get daily incident counts broken down by type. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "Window in days" default(7)
// @Success 200 {array} models.TimelineBucket
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/timeline [get]
func (h *Handler) getTimeline(c *gin.Context) {
	log := h.logger.WithField("method", "getTimeline")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	timeline, err := h.dashboardService.GetTimeline(c.Request.Context(), days)
	if err != nil {
		log.WithError(err).Error("Failed to get timeline from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, timeline)
}

// @Summary Get incident clusters
// @Description Get the latest clustering snapshot ranked by priority. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ClusterSnapshot
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/clusters [get]
func (h *Handler) getClusters(c *gin.Context) {
	log := h.logger.WithField("method", "getClusters")

	snapshot, err := h.dashboardService.GetClusters(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get cluster snapshot from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Recompute incident clusters
// @Description Run a clustering pass over open incidents and return the fresh snapshot. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.ClusterSnapshot
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/clusters/refresh [post]
func (h *Handler) refreshClusters(c *gin.Context) {
	log := h.logger.WithField("method", "refreshClusters")

	snapshot, err := h.clusterService.RunClusteringPass(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to run clustering pass")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Get hot areas
// @Description Get the most loaded coordinate cells over a recent window. Requires API key.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param hours query int false "Window in hours" default(24)
// @Param limit query int false "Maximum number of areas" default(10)
// @Success 200 {array} models.AreaBucket
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /dashboard/top-areas [get]
func (h *Handler) getTopAreas(c *gin.Context) {
	log := h.logger.WithField("method", "getTopAreas")
	hours, _ := strconv.Atoi(c.DefaultQuery("hours", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	areas, err := h.dashboardService.GetTopAreas(c.Request.Context(), hours, limit)
	if err != nil {
		log.WithError(err).Error("Failed to get top areas from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, areas)
}

// @Summary Get application health status
// @Description Get health status of the application and the ML sidecar
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	mlStatus := "ok"
	if err := h.mlHealth.Health(c.Request.Context()); err != nil {
		mlStatus = "unavailable"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "ml_service": mlStatus})
}
