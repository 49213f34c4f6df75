package routes

import (
	"time"

	"worship-roster-backend/internal/api/handlers"
	"worship-roster-backend/internal/api/middleware"
	"worship-roster-backend/internal/auth"
	"worship-roster-backend/internal/config"
	"worship-roster-backend/internal/service"
	"worship-roster-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(store storage.Store, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize services
	scheduleService := service.NewScheduleService(store, validator)
	songService := service.NewSongService(store, validator)
	rosterService := service.NewRosterService(store, validator)
	impedimentService := service.NewImpedimentService(store, validator)
	exportService := service.NewExportService(store)

	// Initialize auth services
	authService := auth.NewAuthService(
		store.Users(),
		cfg.JWTSecret,
		time.Duration(cfg.JWTExpiryMinutes)*time.Minute,
	)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	songHandler := handlers.NewSongHandler(songService)
	singerHandler := handlers.NewSingerHandler(rosterService)
	musicianHandler := handlers.NewMusicianHandler(rosterService)
	instrumentHandler := handlers.NewInstrumentHandler(rosterService)
	impedimentHandler := handlers.NewImpedimentHandler(impedimentService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Singer routes
		singers := v1.Group("/singers")
		{
			singers.GET("", singerHandler.ListSingers)
			singers.POST("", singerHandler.SaveSinger)
			singers.DELETE("/:id", singerHandler.DeleteSinger)
		}

		// Musician routes
		musicians := v1.Group("/musicians")
		{
			musicians.GET("", musicianHandler.ListMusicians)
			musicians.POST("", musicianHandler.SaveMusician)
			musicians.DELETE("/:id", musicianHandler.DeleteMusician)
		}

		// Instrument routes
		instruments := v1.Group("/instruments")
		{
			instruments.GET("", instrumentHandler.ListInstruments)
			instruments.POST("", instrumentHandler.SaveInstrument)
			instruments.DELETE("/:id", instrumentHandler.DeleteInstrument)
		}

		// Song routes
		songs := v1.Group("/songs")
		{
			songs.GET("", songHandler.ListSongs)
			songs.POST("", songHandler.SaveSong)
			songs.GET("/:id", songHandler.GetSong)
			songs.DELETE("/:id", songHandler.DeleteSong)
			songs.POST("/:id/performances", songHandler.AddPerformance)
		}

		// Schedule routes
		schedules := v1.Group("/schedules")
		{
			schedules.GET("", scheduleHandler.ListSchedules)
			schedules.POST("", scheduleHandler.AddSchedule)
			schedules.GET("/resolved", scheduleHandler.ListResolvedSchedules)
			schedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
		}

		// Impediment routes
		impediments := v1.Group("/impediments")
		{
			impediments.GET("", impedimentHandler.ListImpediments)
			impediments.POST("", impedimentHandler.SaveImpediment)
			impediments.DELETE("/:id", impedimentHandler.DeleteImpediment)
		}

		// Export routes
		export := v1.Group("/export")
		{
			export.GET("/songs/:id", exportHandler.SongSheet)
			export.GET("/schedules/:month", exportHandler.MonthlySchedule)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(store storage.Store) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(store)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	return router
}
