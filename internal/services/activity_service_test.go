package services

import (
	"testing"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
)

func TestSelectActivitiesScoring(t *testing.T) {
	svc := NewActivityService(repositories.NewActivityCatalogRepository())

	acts := svc.Select("Delhi", []string{"food", "history"}, 5, request_models.BudgetMid)
	if len(acts) != 5 {
		t.Fatalf("got %d activities, want 5", len(acts))
	}

	// Double match first, single matches ordered by cost, no match last.
	wantOrder := []string{
		"Red Fort & Chandni Chowk food walk",
		"Humayun's Tomb + Lodhi Garden stroll",
		"Dilli Haat crafts & regional bites",
		"Qutub Minar & Mehrauli Archaeological Park",
		"India Gate & Kartavya Path evening",
	}
	for i, want := range wantOrder {
		if acts[i].Name != want {
			t.Errorf("acts[%d] = %q, want %q", i, acts[i].Name, want)
		}
	}
}

func TestSelectActivitiesNoPreferences(t *testing.T) {
	svc := NewActivityService(repositories.NewActivityCatalogRepository())

	acts := svc.Select("Kolkata", nil, 5, request_models.BudgetMid)
	if len(acts) != 5 {
		t.Fatalf("got %d activities, want 5", len(acts))
	}
	// All scores tie at zero, so cheapest-first decides.
	for i := 1; i < len(acts); i++ {
		if acts[i-1].EstCostINR > acts[i].EstCostINR {
			t.Errorf("zero-score activities not sorted by cost: %d before %d",
				acts[i-1].EstCostINR, acts[i].EstCostINR)
		}
	}
}

func TestSelectActivitiesCostCap(t *testing.T) {
	svc := NewActivityService(repositories.NewActivityCatalogRepository())

	acts := svc.Select("Delhi", []string{"food", "history"}, 5, request_models.BudgetLow)
	if acts[0].Name != "Red Fort & Chandni Chowk food walk" {
		t.Fatalf("unexpected first activity %q", acts[0].Name)
	}
	// Catalog price 800 exceeds the budget-tier cap of 600.
	if acts[0].EstCostINR != 600 {
		t.Errorf("capped cost = %d, want 600", acts[0].EstCostINR)
	}
}

func TestSelectActivitiesTargetSize(t *testing.T) {
	svc := NewActivityService(repositories.NewActivityCatalogRepository())

	tests := []struct {
		name string
		days int
		want int
	}{
		{"floor of two even for zero days", 0, 2},
		{"one day takes three", 1, 3},
		{"pool exhausts before target", 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acts := svc.Select("Mumbai", nil, tt.days, request_models.BudgetMid)
			if len(acts) != tt.want {
				t.Errorf("got %d activities, want %d", len(acts), tt.want)
			}
		})
	}
}

func TestSelectActivitiesUnknownCity(t *testing.T) {
	svc := NewActivityService(repositories.NewActivityCatalogRepository())

	acts := svc.Select("Shillong", []string{"nature"}, 3, request_models.BudgetMid)
	if len(acts) != 0 {
		t.Errorf("got %d activities for unknown city, want 0", len(acts))
	}
}

func TestBuildDayByDay(t *testing.T) {
	svc := NewActivityService(repositories.NewActivityCatalogRepository())

	acts := []response_models.Activity{
		{Name: "a1"}, {Name: "a2"}, {Name: "a3"}, {Name: "a4"}, {Name: "a5"},
	}

	plans := svc.BuildDayByDay(acts, 3)
	if len(plans) != 3 {
		t.Fatalf("got %d day plans, want 3", len(plans))
	}

	check := func(day int, slot string, got *string, want string) {
		t.Helper()
		if want == "" {
			if got != nil {
				t.Errorf("day %d %s = %q, want empty slot", day, slot, *got)
			}
			return
		}
		if got == nil || *got != want {
			t.Errorf("day %d %s = %v, want %q", day, slot, got, want)
		}
	}

	check(1, "morning", plans[0].Morning, "a1")
	check(1, "afternoon", plans[0].Afternoon, "a2")
	check(1, "evening", plans[0].Evening, "a3")
	check(2, "morning", plans[1].Morning, "a4")
	check(2, "afternoon", plans[1].Afternoon, "a5")
	check(2, "evening", plans[1].Evening, "")
	check(3, "morning", plans[2].Morning, "")
	check(3, "afternoon", plans[2].Afternoon, "")
	check(3, "evening", plans[2].Evening, "")

	for i, p := range plans {
		if p.Day != i+1 {
			t.Errorf("plans[%d].Day = %d, want %d", i, p.Day, i+1)
		}
	}
}

func TestBuildDayByDayEmptyPool(t *testing.T) {
	svc := NewActivityService(repositories.NewActivityCatalogRepository())

	plans := svc.BuildDayByDay(nil, 2)
	if len(plans) != 2 {
		t.Fatalf("got %d day plans, want 2", len(plans))
	}
	for _, p := range plans {
		if p.Morning != nil || p.Afternoon != nil || p.Evening != nil {
			t.Errorf("day %d has filled slots despite empty pool", p.Day)
		}
	}
}
