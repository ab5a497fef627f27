package repositories

import "sort"

// LatLng is a city centroid in decimal degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// CityRepository exposes the static city coordinate table. The table is
// process-wide read-only reference data; there are no writers.
type CityRepository interface {
	Coordinates(city string) (LatLng, bool)
	ListCities() []string
}

// India-focused seed set; extend as needed.
var cityLatLng = map[string]LatLng{
	"Kolkata":   {22.5726, 88.3639},
	"Delhi":     {28.6139, 77.2090},
	"Mumbai":    {19.0760, 72.8777},
	"Bengaluru": {12.9716, 77.5946},
	"Chennai":   {13.0827, 80.2707},
	"Hyderabad": {17.3850, 78.4867},
	"Pune":      {18.5204, 73.8567},
	"Ahmedabad": {23.0225, 72.5714},
	"Jaipur":    {26.9124, 75.7873},
	"Kochi":     {9.9312, 76.2673},
	"Goa":       {15.2993, 74.1240},
	"Varanasi":  {25.3176, 82.9739},
	"Udaipur":   {24.5854, 73.7125},
}

type cityRepository struct{}

func NewCityRepository() CityRepository {
	return &cityRepository{}
}

func (r *cityRepository) Coordinates(city string) (LatLng, bool) {
	ll, ok := cityLatLng[city]
	return ll, ok
}

func (r *cityRepository) ListCities() []string {
	cities := make([]string, 0, len(cityLatLng))
	for name := range cityLatLng {
		cities = append(cities, name)
	}
	sort.Strings(cities)
	return cities
}
