package services

import (
	"testing"

	"tripwise/internal/models/request_models"
)

func TestGenerateLodgingTiers(t *testing.T) {
	svc := NewLodgingService()

	options := svc.Generate("Delhi", 4, request_models.BudgetMid)
	if len(options) != 3 {
		t.Fatalf("got %d options, want 3", len(options))
	}

	want := []struct {
		hint string
		rate int
	}{
		{"Near city center", 2700},
		{"Walkable to attractions", 3000},
		{"Boutique district", 3900},
	}
	for i, w := range want {
		got := options[i]
		if got.LocationHint != w.hint {
			t.Errorf("option[%d] hint = %q, want %q", i, got.LocationHint, w.hint)
		}
		if got.EstCostPerNightINR != w.rate {
			t.Errorf("option[%d] rate = %d, want %d", i, got.EstCostPerNightINR, w.rate)
		}
		if got.Nights != 4 {
			t.Errorf("option[%d] nights = %d, want 4", i, got.Nights)
		}
		if got.EstTotalINR != w.rate*4 {
			t.Errorf("option[%d] total = %d, want %d", i, got.EstTotalINR, w.rate*4)
		}
		if got.Name != "Mid stay – Delhi" {
			t.Errorf("option[%d] name = %q, want %q", i, got.Name, "Mid stay – Delhi")
		}
		if len(got.BookingURLs) == 0 {
			t.Errorf("option[%d] missing booking urls", i)
		}
	}
}

func TestGenerateLodgingBudgetBaseRates(t *testing.T) {
	svc := NewLodgingService()

	tests := []struct {
		budget   string
		midRate  int
		wantName string
	}{
		{request_models.BudgetLow, 1500, "Budget stay – Goa"},
		{request_models.BudgetMid, 3000, "Mid stay – Goa"},
		{request_models.BudgetPremium, 7000, "Premium stay – Goa"},
	}
	for _, tt := range tests {
		t.Run(tt.budget, func(t *testing.T) {
			options := svc.Generate("Goa", 2, tt.budget)
			if options[1].EstCostPerNightINR != tt.midRate {
				t.Errorf("middle tier rate = %d, want %d", options[1].EstCostPerNightINR, tt.midRate)
			}
			if options[0].Name != tt.wantName {
				t.Errorf("name = %q, want %q", options[0].Name, tt.wantName)
			}
		})
	}
}

func TestGenerateLodgingUnknownCityStillPriced(t *testing.T) {
	svc := NewLodgingService()

	options := svc.Generate("Shillong", 1, request_models.BudgetMid)
	if len(options) != 3 {
		t.Fatalf("got %d options, want 3", len(options))
	}
	if options[0].Name != "Mid stay – Shillong" {
		t.Errorf("name = %q, want %q", options[0].Name, "Mid stay – Shillong")
	}
}
