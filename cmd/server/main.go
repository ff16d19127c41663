package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seoul-commercial-district/internal/config"
	"seoul-commercial-district/internal/database"
	"seoul-commercial-district/internal/handlers"
	custommw "seoul-commercial-district/internal/middleware"
	"seoul-commercial-district/internal/repositories"
	"seoul-commercial-district/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Repositories
	salesRepo := repositories.NewSalesRepository(db)
	districtCodeRepo := repositories.NewDistrictCodeRepository(db)
	populationRepo := repositories.NewPopulationRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	classifier := services.NewCategoryClassifier()
	seriesBuilder := services.NewMonthlySeriesBuilder(classifier)
	salesService := services.NewSalesStatsService(salesRepo, seriesBuilder, metrics)
	populationService := services.NewPopulationService(populationRepo, metrics)
	districtCodeService := services.NewDistrictCodeService(districtCodeRepo)
	generator := services.NewSalesDataGenerator()

	// Seed reference data before accepting traffic
	seeder := database.NewSeeder(districtCodeRepo, populationRepo, salesRepo, generator, metrics, &cfg.Seed)
	if err := seeder.Run(); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	// Handlers
	salesHandler := handlers.NewSalesHandler(salesService)
	districtHandler := handlers.NewDistrictHandler(populationService)
	districtCodeHandler := handlers.NewDistrictCodeHandler(districtCodeService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := newServer(cfg)
	registerRoutes(e, salesHandler, districtHandler, districtCodeHandler, healthHandler)

	go func() {
		addr := ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func newServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler

	e.Use(custommw.RequestID())
	e.Use(custommw.PanicRecovery())
	e.Use(custommw.SecurityHeaders())
	e.Use(custommw.RateLimiterWithConfig(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	return e
}

func registerRoutes(
	e *echo.Echo,
	salesHandler *handlers.SalesHandler,
	districtHandler *handlers.DistrictHandler,
	districtCodeHandler *handlers.DistrictCodeHandler,
	healthHandler *handlers.HealthCheckHandler,
) {
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	sales := api.Group("/sales")
	sales.GET("/district/:districtName", salesHandler.GetByDistrict)
	sales.GET("/district/:districtName/category/:categoryName", salesHandler.GetByDistrictAndCategory)
	sales.GET("/district/:districtName/total", salesHandler.GetDistrictTotal)
	sales.GET("/district/:districtName/total/amount", salesHandler.GetDistrictTotalAmount)
	sales.GET("/district/:districtName/total/count", salesHandler.GetDistrictTotalCount)
	sales.GET("/district/:districtName/categories", salesHandler.GetCategoryBreakdown)
	sales.GET("/district/:districtName/gender", salesHandler.GetGenderSplit)
	sales.GET("/district/:districtName/weekday-weekend", salesHandler.GetWeekdayWeekendSplit)
	sales.GET("/district/:districtName/average-monthly-sales", salesHandler.GetAverageMonthlySales)
	sales.GET("/district/:districtName/recent-businesses", salesHandler.GetRecentBusinessCount)
	sales.GET("/category/:categoryName", salesHandler.GetByCategory)
	sales.GET("/category/:categoryName/districts", salesHandler.GetDistrictBreakdown)
	sales.GET("/top/districts", salesHandler.GetTopDistricts)
	sales.GET("/top/categories", salesHandler.GetTopCategories)
	sales.GET("/monthly/category-groups", salesHandler.GetMonthlyCategoryGroups)
	sales.GET("/monthly/category-groups/:districtName", salesHandler.GetMonthlyCategoryGroupsByDistrict)

	population := api.Group("/population")
	population.GET("", districtHandler.GetAll)
	population.GET("/district/:districtName", districtHandler.GetByName)
	population.GET("/top", districtHandler.GetTop)
	population.GET("/minimum", districtHandler.GetWithMinimumPopulation)
	population.GET("/search", districtHandler.Search)
	population.GET("/summary", districtHandler.GetSummary)

	districtCodes := api.Group("/district-codes")
	districtCodes.GET("", districtCodeHandler.GetAll)
	districtCodes.GET("/code/:districtCode", districtCodeHandler.GetByCode)
	districtCodes.GET("/name/:districtName", districtCodeHandler.GetByName)
	districtCodes.GET("/search", districtCodeHandler.Search)
	districtCodes.GET("/count", districtCodeHandler.Count)
}
