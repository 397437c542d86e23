package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType - закрытый перечень типов бедствий
type IncidentType string

const (
	TypeFire             IncidentType = "fire"
	TypeFlood            IncidentType = "flood"
	TypeRoadBlock        IncidentType = "road_block"
	TypeBuildingDamage   IncidentType = "building_damage"
	TypeMedical          IncidentType = "medical"
	TypeResourceShortage IncidentType = "resource_shortage"
	TypeOther            IncidentType = "other"
)

// IncidentStatus - статус жизненного цикла инцидента
type IncidentStatus string

const (
	StatusPending  IncidentStatus = "pending"
	StatusVerified IncidentStatus = "verified"
	StatusRejected IncidentStatus = "rejected"
	StatusResolved IncidentStatus = "resolved"
)

// UrgencyLevel - порядковый уровень срочности
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

// urgencyOrder задаёт порядок уровней для сравнения и эскалации
var urgencyOrder = []UrgencyLevel{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical}

// Rank возвращает порядковый номер уровня (low=0 ... critical=3)
func (u UrgencyLevel) Rank() int {
	for i, level := range urgencyOrder {
		if level == u {
			return i
		}
	}
	return 0
}

// AtLeast возвращает более срочный из двух уровней
func (u UrgencyLevel) AtLeast(other UrgencyLevel) UrgencyLevel {
	if other.Rank() > u.Rank() {
		return other
	}
	return u
}

// Escalate поднимает уровень на steps ступеней, не выше critical
func (u UrgencyLevel) Escalate(steps int) UrgencyLevel {
	rank := u.Rank() + steps
	if rank >= len(urgencyOrder) {
		rank = len(urgencyOrder) - 1
	}
	return urgencyOrder[rank]
}

// EntityKind - закрытый перечень видов извлекаемых сущностей
type EntityKind string

const (
	EntityLocation       EntityKind = "location"
	EntityUrgency        EntityKind = "urgency"
	EntityResourceNeeded EntityKind = "resource_needed"
	EntityPersonCount    EntityKind = "person_count"
	EntityContactInfo    EntityKind = "contact_info"
)

// EntityKinds - все виды сущностей в фиксированном порядке
var EntityKinds = []EntityKind{
	EntityLocation,
	EntityUrgency,
	EntityResourceNeeded,
	EntityPersonCount,
	EntityContactInfo,
}

// Entities - отображение вида сущности в упорядоченный список извлечённых строк.
// Отсутствие ключа означает "не упомянуто", а не ошибку.
type Entities map[EntityKind][]string

// Incident - отчёт о происшествии со всеми результатами триажа
type Incident struct {
	ID          uuid.UUID      `json:"id"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Type        IncidentType   `json:"incident_type"`
	Status      IncidentStatus `json:"status"`
	Urgency     UrgencyLevel   `json:"urgency_level"`

	// Семантический вектор изображения (L2-нормированный), nil если фото не было
	Embedding []float32 `json:"-"`
	Entities  Entities  `json:"extracted_entities,omitempty"`

	IsDuplicate         bool       `json:"is_duplicate"`
	DuplicateOf         *uuid.UUID `json:"duplicate_of,omitempty"`
	DuplicateSimilarity *float64   `json:"duplicate_similarity,omitempty"`

	// ClusterID валиден только для незакрытых инцидентов; nil означает шум/вне кластера
	ClusterID *int `json:"cluster_id,omitempty"`

	ReporterName      string `json:"reporter_name,omitempty"`
	ReporterContact   string `json:"reporter_contact,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`
	VerificationNotes string `json:"verification_notes,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// ValidIncidentType проверяет принадлежность значения закрытому перечню типов
func ValidIncidentType(t string) bool {
	switch IncidentType(t) {
	case TypeFire, TypeFlood, TypeRoadBlock, TypeBuildingDamage, TypeMedical, TypeResourceShortage, TypeOther:
		return true
	}
	return false
}

// ValidUrgencyLevel проверяет принадлежность значения закрытому перечню уровней
func ValidUrgencyLevel(u string) bool {
	switch UrgencyLevel(u) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}
