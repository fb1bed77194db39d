package routes

import (
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathParts    = "/parts"
	PathServices = "/services"
	PathJobCards = "/job-cards"
	PathAdmin    = "/admin"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	parts := rg.Group(PathParts)
	{
		parts.GET("", h.SearchParts)
		parts.GET("/:partId", h.GetPart)
		parts.GET("/:partId/alternatives", h.GetPartAlternatives)
	}
	rg.GET(PathServices, h.ListServices)
}

func addJobCardRoutes(rg *gin.RouterGroup, h *handlers.JobCardHandler) {
	jobCards := rg.Group(PathJobCards)
	{
		jobCards.GET("/statuses", h.ListStatuses)
		jobCards.GET("/metrics", h.GetMetrics)
		jobCards.GET("", h.ListJobCards)
		jobCards.GET("/:jobCardId", h.GetJobCard)
		jobCards.POST("", h.CreateJobCard)
		jobCards.PATCH("/:jobCardId/status", h.UpdateJobCardStatus)
	}
}

func addAnnotationRoutes(rg *gin.RouterGroup, h *handlers.HotspotHandler, rc *handlers.RegistrationHandler) {
	rg.GET("/diagram", h.GetDiagram)
	rg.GET("/hotspots", h.ListHotspots)

	admin := rg.Group(PathAdmin)
	{
		admin.POST("/hotspots", h.CreateHotspot)
		admin.POST("/diagram-image", h.UploadDiagramImage)
	}

	rg.POST("/ocr/rc", rc.ExtractRegistration)
}
