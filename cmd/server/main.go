package main

import (
	"log"

	"propfinance_app_go/config"
	"propfinance_app_go/db"
	"propfinance_app_go/handlers"
	"propfinance_app_go/middleware"
	"propfinance_app_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize storage for case study imagery
	services.InitializeStorage(cfg)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files (locally stored uploads)
	e.Static("/static", "static")

	// Crawler discovery
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// Public taxonomy reads
	e.GET("/api/counties", handlers.GetCountiesHandler)
	e.GET("/api/counties/:countySlug", handlers.GetCountyHandler)
	e.GET("/api/counties/:countySlug/towns", handlers.GetCountyTownsHandler)
	e.GET("/api/counties/:countySlug/towns/:townSlug", handlers.GetTownHandler)
	e.GET("/api/counties/:countySlug/towns/:townSlug/related", handlers.GetRelatedTownsHandler)
	e.GET("/api/counties/:countySlug/towns/:townSlug/services", handlers.GetLocationServicesHandler)
	e.GET("/api/counties/:countySlug/towns/:townSlug/services/:serviceSlug", handlers.GetLocationServiceHandler)
	e.GET("/api/towns/top", handlers.GetTopTownsHandler)
	e.GET("/api/towns/search", handlers.SearchTownsHandler, middleware.SearchRateLimiter.Middleware())
	e.GET("/api/services", handlers.GetServiceCatalogHandler)
	e.GET("/api/case-studies", handlers.GetCaseStudiesHandler)
	e.GET("/api/case-studies/:slug", handlers.GetCaseStudyHandler)
	e.GET("/api/seo/:page", handlers.GetPageSEOHandler)
	e.GET("/api/seo/counties/:countySlug", handlers.GetCountySEOHandler)
	e.GET("/api/seo/counties/:countySlug/towns/:townSlug", handlers.GetTownSEOHandler)
	e.GET("/api/seo/counties/:countySlug/towns/:townSlug/services/:serviceSlug", handlers.GetLocationServiceSEOHandler)

	// Lead intake
	e.POST("/api/leads", handlers.SubmitLeadHandler, middleware.LeadIntakeRateLimiter.Middleware())

	// Admin surface for the content-generation pipeline and the deal team
	admin := e.Group("/api/admin")
	admin.Use(middleware.RequireAdminKey(cfg))
	{
		admin.POST("/counties", handlers.CreateCountyHandler)
		admin.POST("/towns", handlers.CreateTownHandler)
		admin.POST("/location-services", handlers.CreateLocationServiceHandler)
		admin.POST("/case-studies", handlers.CreateCaseStudyHandler)
		admin.POST("/case-studies/:slug/image", handlers.UploadCaseStudyImageHandler)
		admin.POST("/guides", handlers.CreateGuideHandler)
		admin.GET("/leads", handlers.GetLeadsHandler)
		admin.PUT("/leads/:id/status", handlers.UpdateLeadStatusHandler)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
