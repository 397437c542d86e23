package models

import (
	"time"

	"github.com/google/uuid"
)

// RecommendedAction - рекомендация по приоритету кластера
type RecommendedAction string

const (
	ActionDispatchImmediately RecommendedAction = "dispatch_immediately"
	ActionPrioritizeResponse  RecommendedAction = "prioritize_response"
	ActionMonitor             RecommendedAction = "monitor"
	ActionRoutine             RecommendedAction = "routine"
)

// Cluster - плотностная группа открытых инцидентов.
// Идентификаторы кластеров стабильны только в пределах одного прохода кластеризации.
type Cluster struct {
	ID              int               `json:"cluster_id"`
	CenterLatitude  float64           `json:"center_latitude"`
	CenterLongitude float64           `json:"center_longitude"`
	DominantType    IncidentType      `json:"dominant_type"`
	IncidentCount   int               `json:"incident_count"`
	Priority        float64           `json:"priority"`
	Action          RecommendedAction `json:"recommended_action"`
	IncidentIDs     []uuid.UUID       `json:"incident_ids"`
}

// ClusterSnapshot - результат одного прохода кластеризации
type ClusterSnapshot struct {
	Clusters         []Cluster `json:"clusters"`
	UnclusteredCount int       `json:"unclustered_count"`
	TotalOpen        int       `json:"total_open"`
	Eps              float64   `json:"eps"`
	MinPoints        int       `json:"min_points"`
	ComputedAt       time.Time `json:"computed_at"`
}

// ClassLabel - метка классификатора изображений с её уверенностью
type ClassLabel struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ImageAnalysis - нормализованный выход vision-модели: ранжированные метки
// и L2-нормированный эмбеддинг (nil, если модель его не вернула)
type ImageAnalysis struct {
	Labels    []ClassLabel `json:"labels"`
	Embedding []float32    `json:"-"`
}

// DuplicateMatch - найденный канонический инцидент-дубликат
type DuplicateMatch struct {
	IncidentID uuid.UUID `json:"incident_id"`
	Similarity float64   `json:"similarity"`
}

// TriageResult - итог триажа одного отчёта, возвращается вызывающей стороне
type TriageResult struct {
	Incident       *Incident       `json:"incident"`
	Classification []ClassLabel    `json:"classification,omitempty"`
	Entities       Entities        `json:"entities,omitempty"`
	Urgency        UrgencyLevel    `json:"urgency_level"`
	Duplicate      *DuplicateMatch `json:"duplicate,omitempty"`
	HasEmbedding   bool            `json:"has_embedding"`
}
