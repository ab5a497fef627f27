package services

import (
	"math"

	"tripwise/internal/repositories"
)

const earthRadiusKm = 6371.0

type GeoServiceInterface interface {
	// CityDistanceKm returns the great-circle distance between two known
	// cities, rounded to one decimal, or nil if either city is unknown.
	CityDistanceKm(source, destination string) *float64
}

type GeoService struct {
	cities repositories.CityRepository
}

func NewGeoService(cities repositories.CityRepository) GeoServiceInterface {
	return &GeoService{cities: cities}
}

func (s *GeoService) CityDistanceKm(source, destination string) *float64 {
	src, okSrc := s.cities.Coordinates(source)
	dst, okDst := s.cities.Coordinates(destination)
	if !okSrc || !okDst {
		return nil
	}
	d := math.Round(haversineKm(src.Lat, src.Lng, dst.Lat, dst.Lng)*10) / 10
	return &d
}

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
