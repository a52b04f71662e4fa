package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/chizhinime/brand-pawa-sub000/internal/config"
	"github.com/chizhinime/brand-pawa-sub000/internal/database"
	"github.com/chizhinime/brand-pawa-sub000/internal/handlers"
	"github.com/chizhinime/brand-pawa-sub000/internal/logger"
	"github.com/chizhinime/brand-pawa-sub000/internal/middleware"
	"github.com/chizhinime/brand-pawa-sub000/internal/services"
	"github.com/chizhinime/brand-pawa-sub000/internal/ws"

	_ "github.com/chizhinime/brand-pawa-sub000/docs"
)

// @title           Brand Pawa API
// @version         1.0
// @description     Brand assessment diagnostics and multi-day challenge tracking
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := database.Connect(cfg, log)
	database.AutoMigrate(db, log)
	database.Seed(db, log)

	hub := ws.NewHub(log)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	scoringService := services.NewScoringService()
	activityService := services.NewActivityService(db, hub, log)
	diagnosticService := services.NewDiagnosticService(db)
	sessionService := services.NewDiagnosticSessionService(db, scoringService, activityService, log)
	challengeService := services.NewChallengeService(db)
	entitlementService := services.NewEntitlementService(db)
	enrollmentService := services.NewEnrollmentService(db, entitlementService, activityService, log)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(db)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService, sessionService)
	challengeHandler := handlers.NewChallengeHandler(challengeService, enrollmentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	wsHandler := handlers.NewWSHandler(hub, authService, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/activity", wsHandler.HandleActivitySocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		profile := api.Group("/profile")
		profile.Use(middleware.JWTAuth(authService))
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		diagnostics := api.Group("/diagnostics")
		diagnostics.Use(middleware.JWTAuth(authService))
		{
			diagnostics.GET("", diagnosticHandler.ListDiagnostics)
			diagnostics.POST("/import", diagnosticHandler.ImportDiagnostic)
			diagnostics.GET("/:slug", diagnosticHandler.GetDiagnostic)
			diagnostics.GET("/:slug/session", diagnosticHandler.Resume)
			diagnostics.POST("/:slug/answers", diagnosticHandler.Answer)
			diagnostics.GET("/:slug/result", diagnosticHandler.GetResult)
			diagnostics.POST("/:slug/retake", diagnosticHandler.Retake)
		}

		challenges := api.Group("/challenges")
		challenges.Use(middleware.JWTAuth(authService))
		{
			challenges.GET("", challengeHandler.ListChallenges)
			challenges.GET("/:slug", challengeHandler.GetChallenge)
			challenges.POST("/:slug/enroll", challengeHandler.Enroll)
		}

		enrollments := api.Group("/enrollments")
		enrollments.Use(middleware.JWTAuth(authService))
		{
			enrollments.GET("", challengeHandler.ListEnrollments)
			enrollments.GET("/:id", challengeHandler.GetEnrollment)
			enrollments.POST("/:id/complete", challengeHandler.CompleteTask)
			enrollments.POST("/:id/pause", challengeHandler.PauseEnrollment)
			enrollments.POST("/:id/resume", challengeHandler.ResumeEnrollment)
			enrollments.GET("/:id/weeks", challengeHandler.WeeklyBreakdown)
		}

		activity := api.Group("/activity")
		activity.Use(middleware.JWTAuth(authService))
		{
			activity.GET("", activityHandler.Feed)
			activity.GET("/points", activityHandler.Points)
		}
	}

	log.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
