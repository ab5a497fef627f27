package response_models

type TransportOption struct {
	Mode                string   `json:"mode"`
	ProviderHint        string   `json:"provider_hint"`
	DistanceKm          *float64 `json:"distance_km"`
	DurationHours       float64  `json:"duration_hours"`
	EstCostTotalINR     int      `json:"est_cost_total_inr"`
	EstCostPerPersonINR int      `json:"est_cost_per_person_inr"`
	BookingURLs         []string `json:"booking_urls"`
}

type LodgingOption struct {
	Name               string   `json:"name"`
	LocationHint       string   `json:"location_hint"`
	EstCostPerNightINR int      `json:"est_cost_per_night_inr"`
	Nights             int      `json:"nights"`
	EstTotalINR        int      `json:"est_total_inr"`
	BookingURLs        []string `json:"booking_urls"`
}

type Activity struct {
	Name       string   `json:"name"`
	Theme      []string `json:"theme"`
	EstCostINR int      `json:"est_cost_inr"`
}

// DayPlan slots are nil once the activity pool is exhausted; a day with all
// three slots absent is still a valid day.
type DayPlan struct {
	Day       int     `json:"day"`
	Morning   *string `json:"morning"`
	Afternoon *string `json:"afternoon"`
	Evening   *string `json:"evening"`
}

type CostBreakdown struct {
	TransportINR  int `json:"transport_inr"`
	LodgingINR    int `json:"lodging_inr"`
	ActivitiesINR int `json:"activities_inr"`
	BufferINR     int `json:"buffer_inr"`
	TotalINR      int `json:"total_inr"`
}

type AIAdvice struct {
	Rationale   string   `json:"rationale"`
	MustDo      []string `json:"must_do"`
	LocalFoods  []string `json:"local_foods"`
	SafetyTips  []string `json:"safety_tips"`
	PackingTips []string `json:"packing_tips"`
}

type AINarrative struct {
	Overview string   `json:"overview"`
	DayTips  []string `json:"day_tips"`
}

// TripPlan is the sole response entity of the planner. The AI fields stay nil
// whenever enrichment is disabled or degrades.
type TripPlan struct {
	Summary          string            `json:"summary"`
	TransportOptions []TransportOption `json:"transport_options"`
	LodgingOptions   []LodgingOption   `json:"lodging_options"`
	Activities       []Activity        `json:"activities"`
	DayByDay         []DayPlan         `json:"day_by_day"`
	CostBreakdown    CostBreakdown     `json:"cost_breakdown"`
	Notes            []string          `json:"notes"`
	AIAdvice         *AIAdvice         `json:"ai_advice,omitempty"`
	AINarrative      *AINarrative      `json:"ai_narrative,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Ts     string `json:"ts"`
}

type CitiesResponse struct {
	KnownCities []string `json:"known_cities"`
}
