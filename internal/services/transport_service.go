package services

import (
	"math"
	"sort"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
)

type TransportServiceInterface interface {
	// Generate always returns all four modes, sorted fastest-first with total
	// cost as the tie-break, regardless of plausibility for the distance.
	Generate(distanceKm *float64, travelers int, budget string) []response_models.TransportOption
}

type TransportService struct{}

func NewTransportService() TransportServiceInterface {
	return &TransportService{}
}

var budgetFactor = map[string]float64{
	request_models.BudgetLow:     0.9,
	request_models.BudgetMid:     1.0,
	request_models.BudgetPremium: 1.35,
}

var providerHints = map[string]string{
	"flight": "Use a meta-search (e.g., Google Flights, Skyscanner).",
	"train":  "Use IRCTC or authorized partners.",
	"bus":    "Use Redbus or state RTC portals.",
	"car":    "Use Ola/Uber or local rentals.",
}

var bookingLinks = map[string][]string{
	"flight": {"https://www.google.com/travel/flights", "https://www.skyscanner.net/"},
	"train":  {"https://www.irctc.co.in/", "https://www.confirmtkt.com/"},
	"bus":    {"https://www.redbus.in/", "https://www.abhibus.com/"},
	"car":    {"https://www.olacabs.com/", "https://www.uber.com/"},
}

type transportBaseline struct {
	mode     string
	baseCost int
	hours    float64
}

func (s *TransportService) Generate(distanceKm *float64, travelers int, budget string) []response_models.TransportOption {
	var base []transportBaseline
	if distanceKm == nil {
		// No distance known: fixed fallback estimates per mode.
		base = []transportBaseline{
			{"flight", 1000, 2.5},
			{"train", 600, 10.0},
			{"bus", 400, 14.0},
			{"car", 1000, 12.0},
		}
	} else {
		d := *distanceKm
		base = []transportBaseline{
			{"flight", maxInt(2500, int(d*6.5)), maxFloat(1.0, round1(d/750.0))},
			{"train", maxInt(150, int(d*1.0)), maxFloat(2.0, round1(d/80.0))},
			{"bus", maxInt(200, int(d*2.2)), maxFloat(3.0, round1(d/50.0))},
			{"car", maxInt(500, int(d*20.0)), maxFloat(2.0, round1(d/60.0))},
		}
	}

	factor := budgetFactor[budget]
	if travelers < 1 {
		travelers = 1
	}

	options := make([]response_models.TransportOption, 0, len(base))
	for _, b := range base {
		totalCost := int(math.Round(float64(b.baseCost) * factor))
		perPerson := int(math.Ceil(float64(totalCost) / float64(travelers)))
		options = append(options, response_models.TransportOption{
			Mode:                b.mode,
			ProviderHint:        providerHints[b.mode],
			DistanceKm:          distanceKm,
			DurationHours:       b.hours,
			EstCostTotalINR:     totalCost,
			EstCostPerPersonINR: perPerson,
			BookingURLs:         bookingLinks[b.mode],
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].DurationHours != options[j].DurationHours {
			return options[i].DurationHours < options[j].DurationHours
		}
		return options[i].EstCostTotalINR < options[j].EstCostTotalINR
	})
	return options
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
