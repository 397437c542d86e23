package models

// DashboardStats - сводные счётчики по сохранённым инцидентам
type DashboardStats struct {
	TotalIncidents    int                  `json:"total_incidents"`
	PendingIncidents  int                  `json:"pending_incidents"`
	VerifiedIncidents int                  `json:"verified_incidents"`
	ResolvedIncidents int                  `json:"resolved_incidents"`
	RejectedIncidents int                  `json:"rejected_incidents"`
	CriticalIncidents int                  `json:"critical_incidents"`
	ActiveClusters    int                  `json:"active_clusters"`
	IncidentsLast24h  int                  `json:"incidents_last_24h"`
	MostCommonType    IncidentType         `json:"most_common_type,omitempty"`
	ByType            map[IncidentType]int `json:"by_type"`
	ByUrgency         map[UrgencyLevel]int `json:"by_urgency"`
}

// TimelineBucket - счётчики инцидентов за один день
type TimelineBucket struct {
	Date   string               `json:"date"`
	Total  int                  `json:"total"`
	ByType map[IncidentType]int `json:"by_type"`
}

// AreaBucket - "горячая" координатная ячейка (огрубление до сетки ~1 км)
type AreaBucket struct {
	Latitude  float64              `json:"latitude"`
	Longitude float64              `json:"longitude"`
	Count     int                  `json:"count"`
	ByType    map[IncidentType]int `json:"by_type"`
}
