package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Маршруты инцидентов и дашборда закрыты API-ключом, health остаётся открытым.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	// Маршруты приёма и управления инцидентами
	incidents := api.Group("/incidents", auth)
	{
		incidents.POST("", h.submitIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncident)
		incidents.POST("/:id/verify", h.verifyIncident)
		incidents.POST("/:id/resolve", h.resolveIncident)
	}

	// Маршруты read-only проекций дашборда
	dashboard := api.Group("/dashboard", auth)
	{
		dashboard.GET("/stats", h.getDashboardStats)
		dashboard.GET("/timeline", h.getTimeline)
		dashboard.GET("/clusters", h.getClusters)
		dashboard.POST("/clusters/refresh", h.refreshClusters)
		dashboard.GET("/top-areas", h.getTopAreas)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
