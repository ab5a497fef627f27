package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripwise/cmd/fx/ai_fx"
	"tripwise/cmd/fx/cache_fx"
	"tripwise/cmd/fx/catalog_fx"
	"tripwise/cmd/fx/planner_fx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	app := fx.New(
		ai_fx.Module,
		catalog_fx.Module,
		cache_fx.Module,
		planner_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	planController *controllers.PlanController,
	metaController *controllers.MetaController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, metaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	metaController *controllers.MetaController) {

	limiter := middleware.NewClientLimiter(envFloat("RATE_LIMIT_RPS", 10), envInt("RATE_LIMIT_BURST", 20))

	r.POST("/plan", middleware.RateLimitMiddleware(limiter), planController.CreatePlanHandler)
	r.GET("/health", metaController.HealthHandler)
	r.GET("/cities", metaController.CitiesHandler)
	r.GET("/", metaController.RootHandler)
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
