package services

import (
	"fmt"
	"strings"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
)

type LodgingServiceInterface interface {
	// Generate returns the three lodging tiers for the destination, ordered
	// by ascending location multiplier.
	Generate(city string, nights int, budget string) []response_models.LodgingOption
}

type LodgingService struct{}

func NewLodgingService() LodgingServiceInterface {
	return &LodgingService{}
}

var lodgingBaseRate = map[string]int{
	request_models.BudgetLow:     1500,
	request_models.BudgetMid:     3000,
	request_models.BudgetPremium: 7000,
}

var lodgingTiers = []struct {
	locationHint string
	multiplier   float64
}{
	{"Near city center", 0.9},
	{"Walkable to attractions", 1.0},
	{"Boutique district", 1.3},
}

var lodgingBookingURLs = []string{
	"https://www.booking.com/",
	"https://www.makemytrip.com/hotels/",
	"https://www.airbnb.com/",
}

func (s *LodgingService) Generate(city string, nights int, budget string) []response_models.LodgingOption {
	base := lodgingBaseRate[budget]
	name := fmt.Sprintf("%s stay – %s", titleCase(budget), city)

	results := make([]response_models.LodgingOption, 0, len(lodgingTiers))
	for _, tier := range lodgingTiers {
		rate := int(float64(base) * tier.multiplier)
		results = append(results, response_models.LodgingOption{
			Name:               name,
			LocationHint:       tier.locationHint,
			EstCostPerNightINR: rate,
			Nights:             nights,
			EstTotalINR:        rate * nights,
			BookingURLs:        lodgingBookingURLs,
		})
	}
	return results
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
