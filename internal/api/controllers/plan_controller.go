package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripwise/internal/cache"
	"tripwise/internal/models/request_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

type PlanController struct {
	plannerService services.PlannerServiceInterface
	planCache      cache.PlanCache
}

func NewPlanController(plannerService services.PlannerServiceInterface, planCache cache.PlanCache) *PlanController {
	return &PlanController{
		plannerService: plannerService,
		planCache:      planCache,
	}
}

// CreatePlanHandler handles POST /plan. Validation failures are the only
// caller-visible errors; unknown cities and AI failures degrade inside the
// pipeline and still produce a structurally complete plan.
func (p *PlanController) CreatePlanHandler(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx := c.Request.Context()

	// Deterministic requests can be served straight from cache.
	if !req.AIEnabled() {
		if plan, found := p.planCache.Get(ctx, &req); found {
			utils.RespondSuccess(c, plan, "Trip plan created successfully")
			return
		}
	}

	plan, err := p.plannerService.BuildPlan(ctx, &req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if !req.AIEnabled() {
		_ = p.planCache.Set(ctx, &req, plan)
	}

	utils.RespondSuccess(c, plan, "Trip plan created successfully")
}
