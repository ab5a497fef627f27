package catalog_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	repositories.NewCityRepository,
	repositories.NewActivityCatalogRepository,
	services.NewGeoService,
)
