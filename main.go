package main

import (
	"fmt"
	"log"
	"os"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"SESSION_DURATION",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	// Redis is optional: without it sessions fall back to Mongo reads
	// and token revocation is disabled.
	redisURL := os.Getenv("REDIS_URL")
	if redisURL != "" {
		cache, err := services.NewSessionCache(redisURL)
		if err != nil {
			log.Printf("Session cache unavailable: %v", err)
		} else {
			services.GlobalSessionCache = cache
		}

		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Printf("Token blacklist unavailable: %v", err)
		} else {
			services.TokenBlacklist = blacklist
		}
	} else {
		log.Println("REDIS_URL not set, running without session cache and token blacklist")
	}

	if utils.MongoClient != nil {
		db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
		if err := repository.SetupIndexes(db); err != nil {
			log.Printf("Index setup failed: %v", err)
		}
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimiter(1 << 20))
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	presetsRepo := repository.GetPresetsRepo(utils.MongoClient)
	entriesRepo := repository.GetEntriesRepo(utils.MongoClient)
	activitiesRepo := repository.GetActivitiesRepo(utils.MongoClient)
	userRepo := repository.GetUserRepo(utils.MongoClient)

	presetsHandler := handler.NewPresetsHandler(usecase.NewPresetsService(presetsRepo, activitiesRepo))
	entriesHandler := handler.NewEntriesHandler(usecase.NewEntriesService(entriesRepo))
	activitiesHandler := handler.NewActivitiesHandler(usecase.NewActivitiesService(activitiesRepo))
	statsHandler := handler.NewStatsHandler(&usecase.StatsService{
		Entries:    entriesRepo,
		Presets:    presetsRepo,
		Activities: activitiesRepo,
		Users:      userRepo,
		Sessions:   sessionRepo,
	})

	router.Use(middleware.SessionMiddleware(sessionRepo))

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", middleware.ValidateAuthInput(), handler.RegistrationHandler)
			auth.POST("/login", middleware.ValidateAuthInput(), func(c *gin.Context) {
				handler.LoginHandler(c, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.CacheControl("no-store"))
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", handler.GetUserProfileHandler)
			user.POST("/change-email", handler.ChangeEmailHandler)
			user.POST("/change-password", handler.ChangePasswordHandler)
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.DELETE("/delete", func(c *gin.Context) {
				handler.DeleteUserHandler(c, sessionRepo)
			})
		}

		twofa := protected.Group("/2fa")
		{
			twofa.POST("/generate", handler.Generate2FASecretHandler)
			twofa.POST("/enable", handler.Enable2FAHandler)
			twofa.POST("/verify", handler.Verify2FAHandler)
			twofa.POST("/disable", handler.Disable2FAHandler)
			twofa.POST("/recovery", handler.UseRecoveryCodeHandler)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, sessionRepo)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handler.LogoutSession(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessions(c, sessionRepo)
			})
		}

		presets := protected.Group("/presets")
		{
			presets.GET("/", presetsHandler.GetUserPresets)
			presets.POST("/", presetsHandler.CreatePreset)
			presets.GET("/:id", presetsHandler.GetPreset)
			presets.PUT("/:id", presetsHandler.UpdatePreset)
			presets.DELETE("/:id", presetsHandler.DeletePreset)
			presets.POST("/:id/activate", presetsHandler.ActivatePreset)
			presets.POST("/:id/archive", presetsHandler.ArchivePreset)
		}

		entries := protected.Group("/entries")
		{
			entries.GET("/", entriesHandler.GetUserEntries)
			entries.POST("/", entriesHandler.CreateEntry)
			entries.GET("/mood-series", entriesHandler.GetMoodSeries)
			entries.GET("/date/:date", entriesHandler.GetEntryByDate)
			entries.PUT("/:id", entriesHandler.UpdateEntry)
			entries.DELETE("/:id", entriesHandler.DeleteEntry)
		}

		activities := protected.Group("/activities")
		{
			activities.GET("/", activitiesHandler.GetInRange)
			activities.GET("/date/:date", activitiesHandler.GetByDate)
			activities.POST("/:id/complete", activitiesHandler.CompleteActivity)
			activities.POST("/:id/uncomplete", activitiesHandler.UncompleteActivity)
		}

		protected.GET("/stats", statsHandler.GetUserStats)
	}

	return router
}

func main() {
	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
