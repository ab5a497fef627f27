package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type PlannerServiceInterface interface {
	BuildPlan(ctx context.Context, req *request_models.TripRequest) (*response_models.TripPlan, error)
}

type PlannerService struct {
	geo        GeoServiceInterface
	transport  TransportServiceInterface
	lodging    LodgingServiceInterface
	activities ActivityServiceInterface
	enrichment EnrichmentServiceInterface
	catalog    repositories.ActivityCatalogRepository
}

func NewPlannerService(
	geo GeoServiceInterface,
	transport TransportServiceInterface,
	lodging LodgingServiceInterface,
	activities ActivityServiceInterface,
	enrichment EnrichmentServiceInterface,
	catalog repositories.ActivityCatalogRepository,
) PlannerServiceInterface {
	return &PlannerService{
		geo:        geo,
		transport:  transport,
		lodging:    lodging,
		activities: activities,
		enrichment: enrichment,
		catalog:    catalog,
	}
}

// BuildPlan runs the full pipeline. The ordering is load-bearing: re-ranking
// must precede the day-by-day build and the cost aggregation so both reflect
// AI-adjusted priority, and advice/narrative run last because they summarize
// the finalized plan.
func (s *PlannerService) BuildPlan(ctx context.Context, req *request_models.TripRequest) (*response_models.TripPlan, error) {
	days := req.InferDays()
	if days < 1 {
		return nil, utils.ErrInvalidInput
	}
	nights := days - 1
	if nights < 1 {
		nights = 1
	}

	dist := s.geo.CityDistanceKm(req.Source, req.Destination)

	transport := s.transport.Generate(dist, req.Travelers, req.BudgetLevel)
	lodging := s.lodging.Generate(req.Destination, nights, req.BudgetLevel)

	acts := s.activities.Select(req.Destination, req.Preferences, days, req.BudgetLevel)
	acts = s.enrichment.RerankActivities(ctx, req, acts)

	dayByDay := s.activities.BuildDayByDay(acts, days)

	summary := summarize(req, dist, days)
	costs := computeCosts(transport, lodging, acts)
	notes := s.advisoryNotes(req, dist)

	plan := &response_models.TripPlan{
		Summary:          summary,
		TransportOptions: transport,
		LodgingOptions:   lodging,
		Activities:       acts,
		DayByDay:         dayByDay,
		CostBreakdown:    costs,
		Notes:            notes,
	}

	plan.AIAdvice = s.enrichment.GenerateAdvice(ctx, req, summary)
	plan.AINarrative = s.enrichment.GenerateNarrative(ctx, req, dayByDay)

	return plan, nil
}

func summarize(req *request_models.TripRequest, distanceKm *float64, days int) string {
	distTxt := ""
	if distanceKm != nil {
		distTxt = fmt.Sprintf(" (~%s km)", strconv.FormatFloat(*distanceKm, 'f', -1, 64))
	}
	return fmt.Sprintf("Trip from %s to %s%s, departing %s for %d day(s), %d traveler(s), budget: %s.",
		req.Source, req.Destination, distTxt, req.DepartDate, days, req.Travelers, req.BudgetLevel)
}

// computeCosts uses the cheapest transport and lodging options, not the
// recommended ones: the breakdown is a "cheapest plausible trip" floor.
func computeCosts(
	transport []response_models.TransportOption,
	lodging []response_models.LodgingOption,
	activities []response_models.Activity,
) response_models.CostBreakdown {
	transportMin := 0
	for i, t := range transport {
		if i == 0 || t.EstCostTotalINR < transportMin {
			transportMin = t.EstCostTotalINR
		}
	}
	lodgingMin := 0
	for i, l := range lodging {
		if i == 0 || l.EstTotalINR < lodgingMin {
			lodgingMin = l.EstTotalINR
		}
	}
	activitiesSum := 0
	for _, a := range activities {
		activitiesSum += a.EstCostINR
	}

	buffer := int(math.Round(0.12 * float64(transportMin+lodgingMin+activitiesSum)))
	return response_models.CostBreakdown{
		TransportINR:  transportMin,
		LodgingINR:    lodgingMin,
		ActivitiesINR: activitiesSum,
		BufferINR:     buffer,
		TotalINR:      transportMin + lodgingMin + activitiesSum + buffer,
	}
}

// advisoryNotes applies the fixed rule set; all applicable rules fire.
func (s *PlannerService) advisoryNotes(req *request_models.TripRequest, distanceKm *float64) []string {
	notes := []string{}
	if req.FlexibilityHours > 0 {
		notes = append(notes, fmt.Sprintf(
			"With ±%dh flexibility, consider red-eye flights or off-peak trains for better prices.",
			req.FlexibilityHours))
	}
	if distanceKm != nil && *distanceKm < 400 {
		notes = append(notes, "For sub-400 km routes, bus or train can be cost-effective versus flights.")
	}
	if distanceKm != nil && *distanceKm > 1200 {
		notes = append(notes, "Over 1200 km: prefer flights to minimize travel time.")
	}
	if !s.catalog.HasCity(req.Destination) {
		notes = append(notes, "Add a real activities provider/API for richer suggestions.")
	}
	return notes
}
