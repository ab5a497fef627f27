package services

import (
	"sort"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
)

type ActivityServiceInterface interface {
	// Select scores the destination catalog against the preference tags and
	// returns up to max(2, 3*days) activities with budget-capped costs.
	// Unknown destinations yield an empty list.
	Select(city string, preferences []string, days int, budget string) []response_models.Activity

	// BuildDayByDay walks the activity sequence in strides of three, filling
	// morning/afternoon/evening slots until the pool runs out.
	BuildDayByDay(activities []response_models.Activity, days int) []response_models.DayPlan
}

type ActivityService struct {
	catalog repositories.ActivityCatalogRepository
}

func NewActivityService(catalog repositories.ActivityCatalogRepository) ActivityServiceInterface {
	return &ActivityService{catalog: catalog}
}

var activityCostCap = map[string]int{
	request_models.BudgetLow:     600,
	request_models.BudgetMid:     1200,
	request_models.BudgetPremium: 5000,
}

func (s *ActivityService) Select(city string, preferences []string, days int, budget string) []response_models.Activity {
	pool := s.catalog.ByCity(city)
	if len(pool) == 0 {
		return []response_models.Activity{}
	}

	score := func(a repositories.CatalogActivity) int {
		if len(preferences) == 0 {
			return 0
		}
		n := 0
		for _, p := range preferences {
			for _, t := range a.Theme {
				if p == t {
					n++
					break
				}
			}
		}
		return n
	}

	// Stable sort keeps catalog order for full ties.
	sort.SliceStable(pool, func(i, j int) bool {
		si, sj := score(pool[i]), score(pool[j])
		if si != sj {
			return si > sj
		}
		return pool[i].EstCostINR < pool[j].EstCostINR
	})

	target := len(pool)
	if want := maxInt(2, days*3); want < target {
		target = want
	}

	costCap := activityCostCap[budget]
	chosen := make([]response_models.Activity, 0, target)
	for _, a := range pool[:target] {
		cost := a.EstCostINR
		if cost > costCap {
			cost = costCap
		}
		chosen = append(chosen, response_models.Activity{
			Name:       a.Name,
			Theme:      a.Theme,
			EstCostINR: cost,
		})
	}
	return chosen
}

func (s *ActivityService) BuildDayByDay(activities []response_models.Activity, days int) []response_models.DayPlan {
	plans := make([]response_models.DayPlan, 0, days)
	i := 0
	for day := 1; day <= days; day++ {
		plans = append(plans, response_models.DayPlan{
			Day:       day,
			Morning:   activityNameAt(activities, i),
			Afternoon: activityNameAt(activities, i+1),
			Evening:   activityNameAt(activities, i+2),
		})
		i += 3
	}
	return plans
}

func activityNameAt(activities []response_models.Activity, i int) *string {
	if i < len(activities) {
		name := activities[i].Name
		return &name
	}
	return nil
}
