package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/disaster_triage_system/internal/models"
)

// CreateIncidentRequest DTO для приёма отчёта о происшествии (multipart-форма)
// @Description DTO для приёма отчёта о происшествии
type CreateIncidentRequest struct {
	Title           string  `form:"title" validate:"required,min=2,max=255"`
	Description     string  `form:"description" validate:"required"`
	Latitude        float64 `form:"latitude" validate:"latitude"`
	Longitude       float64 `form:"longitude" validate:"longitude"`
	IncidentType    string  `form:"incident_type" validate:"required"`
	ReporterName    string  `form:"reporter_name" validate:"omitempty,max=255"`
	ReporterContact string  `form:"reporter_contact" validate:"omitempty,max=255"`
	ImageURL        string  `form:"image_url" validate:"omitempty,url"`
}

// UpdateIncidentRequest DTO для частичной правки инцидента оператором.
// Отсутствующее поле не меняется; статус меняется только через verify/resolve.
// @Description DTO для частичной правки инцидента
type UpdateIncidentRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=2,max=255"`
	Description  *string `json:"description" validate:"omitempty"`
	IncidentType *string `json:"incident_type" validate:"omitempty"`
	UrgencyLevel *string `json:"urgency_level" validate:"omitempty"`
}

// VerifyIncidentRequest DTO для результата ручной проверки инцидента
// @Description DTO для результата ручной проверки инцидента
type VerifyIncidentRequest struct {
	Verified *bool  `json:"verified" validate:"required"`
	Notes    string `json:"notes" validate:"omitempty,max=2000"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                  uuid.UUID           `json:"id"`
	Latitude            float64             `json:"latitude"`
	Longitude           float64             `json:"longitude"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	IncidentType        string              `json:"incident_type"`
	Status              string              `json:"status"`
	UrgencyLevel        string              `json:"urgency_level"`
	Entities            map[string][]string `json:"extracted_entities,omitempty"`
	IsDuplicate         bool                `json:"is_duplicate"`
	DuplicateOf         *uuid.UUID          `json:"duplicate_of,omitempty"`
	DuplicateSimilarity *float64            `json:"duplicate_similarity,omitempty"`
	ClusterID           *int                `json:"cluster_id,omitempty"`
	ReporterName        string              `json:"reporter_name,omitempty"`
	ReporterContact     string              `json:"reporter_contact,omitempty"`
	ImageURL            string              `json:"image_url,omitempty"`
	VerificationNotes   string              `json:"verification_notes,omitempty"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
	ResolvedAt          *time.Time          `json:"resolved_at,omitempty"`
}

// TriageResponse DTO для ответа на принятый отчёт
// @Description DTO для ответа на принятый отчёт: инцидент и сигналы триажа
type TriageResponse struct {
	Incident       IncidentResponse       `json:"incident"`
	Classification []models.ClassLabel    `json:"classification,omitempty"`
	UrgencyLevel   string                 `json:"urgency_level"`
	Duplicate      *models.DuplicateMatch `json:"duplicate,omitempty"`
	HasEmbedding   bool                   `json:"has_embedding"`
}

// ListIncidentsResponse DTO для постраничного списка инцидентов
// @Description DTO для постраничного списка инцидентов
type ListIncidentsResponse struct {
	Total     int                 `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
	Incidents []*IncidentResponse `json:"incidents"`
}
