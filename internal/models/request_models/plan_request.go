package request_models

import (
	"tripwise/pkg/utils"
)

// Budget tiers accepted by the planner.
const (
	BudgetLow     = "budget"
	BudgetMid     = "mid"
	BudgetPremium = "premium"
)

// AIConfig controls the optional LLM enrichment for a single request.
type AIConfig struct {
	Enabled     bool    `json:"enabled"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
}

type TripRequest struct {
	Source           string    `json:"source" binding:"required"`
	Destination      string    `json:"destination" binding:"required"`
	DepartDate       string    `json:"depart_date" binding:"required"`
	ReturnDate       string    `json:"return_date"`
	Days             int       `json:"days"`
	Travelers        int       `json:"travelers"`
	BudgetLevel      string    `json:"budget_level"`
	Preferences      []string  `json:"preferences"`
	FlexibilityHours int       `json:"flexibility_hours"`
	AI               *AIConfig `json:"ai"`
}

// Normalize fills in the documented defaults for omitted fields.
// It must run before Validate.
func (r *TripRequest) Normalize() {
	if r.Travelers == 0 {
		r.Travelers = 1
	}
	if r.BudgetLevel == "" {
		r.BudgetLevel = BudgetMid
	}
	if r.AI == nil {
		r.AI = &AIConfig{}
	}
	if r.AI.Temperature == 0 {
		r.AI.Temperature = 0.3
	}
}

// Validate rejects malformed requests before the pipeline runs. Unknown
// cities are not an error; they degrade inside the pipeline.
func (r *TripRequest) Validate() error {
	if _, err := utils.ParseISODate(r.DepartDate); err != nil {
		return utils.ErrInvalidDate
	}
	if r.ReturnDate != "" {
		if _, err := utils.ParseISODate(r.ReturnDate); err != nil {
			return utils.ErrInvalidDate
		}
	}
	if r.Travelers < 1 {
		return utils.ErrInvalidTravelers
	}
	switch r.BudgetLevel {
	case BudgetLow, BudgetMid, BudgetPremium:
	default:
		return utils.ErrUnknownBudgetLevel
	}
	if r.Days < 0 {
		return utils.ErrInvalidInput
	}
	if r.FlexibilityHours < 0 {
		return utils.ErrInvalidInput
	}
	if r.AI != nil && (r.AI.Temperature < 0 || r.AI.Temperature > 2) {
		return utils.ErrInvalidInput
	}
	return nil
}

// InferDays returns the trip length: the explicit day count when given,
// max(1, return-depart+1) when both dates parse, else a default weekend of 2.
func (r *TripRequest) InferDays() int {
	if r.Days > 0 {
		return r.Days
	}
	depart, err := utils.ParseISODate(r.DepartDate)
	if err != nil {
		return 2
	}
	if r.ReturnDate == "" {
		return 2
	}
	ret, err := utils.ParseISODate(r.ReturnDate)
	if err != nil {
		return 2
	}
	days := int(ret.Sub(depart).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// AIEnabled reports whether enrichment calls should be attempted at all.
func (r *TripRequest) AIEnabled() bool {
	return r.AI != nil && r.AI.Enabled
}
