package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

// AIStatus describes the configured LLM provider for the service banner.
type AIStatus struct {
	Provider      string
	DefaultModel  string
	HasCredential bool
}

type MetaController struct {
	cities   repositories.CityRepository
	aiStatus AIStatus
}

func NewMetaController(cities repositories.CityRepository, aiStatus AIStatus) *MetaController {
	return &MetaController{
		cities:   cities,
		aiStatus: aiStatus,
	}
}

func (m *MetaController) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{
		Status: "ok",
		Ts:     utils.NowTimestamp(),
	})
}

func (m *MetaController) CitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.CitiesResponse{
		KnownCities: m.cities.ListCities(),
	})
}

// RootHandler returns a service banner with a ready-to-send sample request.
func (m *MetaController) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Trip planner API is running. POST /plan to create a plan.",
		"ai_config": gin.H{
			"provider":      m.aiStatus.Provider,
			"env_has_key":   m.aiStatus.HasCredential,
			"default_model": m.aiStatus.DefaultModel,
		},
		"sample": gin.H{
			"POST /plan": gin.H{
				"source":            "Kolkata",
				"destination":       "Delhi",
				"depart_date":       "2025-09-20",
				"return_date":       "2025-09-24",
				"travelers":         2,
				"budget_level":      "mid",
				"preferences":       []string{"food", "history"},
				"flexibility_hours": 6,
				"ai":                gin.H{"enabled": true, "model": "", "temperature": 0.3},
			},
		},
	})
}
