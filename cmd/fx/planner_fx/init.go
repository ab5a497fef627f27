package planner_fx

import (
	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	services.NewTransportService,
	services.NewLodgingService,
	services.NewActivityService,
	services.NewEnrichmentService,
	services.NewPlannerService,
	controllers.NewPlanController,
	controllers.NewMetaController,
)
