package v1

import (
	"github.com/shenikar/disaster_triage_system/internal/models"
	"github.com/shenikar/disaster_triage_system/internal/service"
)

// DTOToReport преобразует DTO отчёта в доменную модель.
// Байты изображения приходят отдельной частью формы и подставляются хендлером.
func DTOToReport(dto CreateIncidentRequest) *service.Report {
	return &service.Report{
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
		Title:           dto.Title,
		Description:     dto.Description,
		Type:            models.IncidentType(dto.IncidentType),
		ReporterName:    dto.ReporterName,
		ReporterContact: dto.ReporterContact,
		ImageURL:        dto.ImageURL,
	}
}

// DTOToIncidentUpdate преобразует DTO частичной правки в доменную модель
func DTOToIncidentUpdate(dto UpdateIncidentRequest) service.IncidentUpdate {
	upd := service.IncidentUpdate{
		Title:       dto.Title,
		Description: dto.Description,
	}
	if dto.IncidentType != nil {
		incidentType := models.IncidentType(*dto.IncidentType)
		upd.Type = &incidentType
	}
	if dto.UrgencyLevel != nil {
		urgency := models.UrgencyLevel(*dto.UrgencyLevel)
		upd.Urgency = &urgency
	}
	return upd
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	resp := &IncidentResponse{
		ID:                  model.ID,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		Title:               model.Title,
		Description:         model.Description,
		IncidentType:        string(model.Type),
		Status:              string(model.Status),
		UrgencyLevel:        string(model.Urgency),
		IsDuplicate:         model.IsDuplicate,
		DuplicateOf:         model.DuplicateOf,
		DuplicateSimilarity: model.DuplicateSimilarity,
		ClusterID:           model.ClusterID,
		ReporterName:        model.ReporterName,
		ReporterContact:     model.ReporterContact,
		ImageURL:            model.ImageURL,
		VerificationNotes:   model.VerificationNotes,
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
		ResolvedAt:          model.ResolvedAt,
	}
	if len(model.Entities) > 0 {
		resp.Entities = make(map[string][]string, len(model.Entities))
		for kind, spans := range model.Entities {
			resp.Entities[string(kind)] = spans
		}
	}
	return resp
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, incident := range incidents {
		responses[i] = ModelToIncidentResponse(incident)
	}
	return responses
}

// TriageResultToResponse преобразует итог триажа в DTO для ответа
func TriageResultToResponse(result *models.TriageResult) *TriageResponse {
	return &TriageResponse{
		Incident:       *ModelToIncidentResponse(result.Incident),
		Classification: result.Classification,
		UrgencyLevel:   string(result.Urgency),
		Duplicate:      result.Duplicate,
		HasEmbedding:   result.HasEmbedding,
	}
}
