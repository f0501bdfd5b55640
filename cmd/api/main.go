package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/heinicus/mobile-mechanic-api/api/swagger"
	"github.com/heinicus/mobile-mechanic-api/internal/handler"
	"github.com/heinicus/mobile-mechanic-api/internal/middleware"
	"github.com/heinicus/mobile-mechanic-api/internal/models"
	"github.com/heinicus/mobile-mechanic-api/internal/repository"
	"github.com/heinicus/mobile-mechanic-api/internal/service"
	"github.com/heinicus/mobile-mechanic-api/internal/store"
	"github.com/heinicus/mobile-mechanic-api/pkg/cache"
	"github.com/heinicus/mobile-mechanic-api/pkg/config"
	"github.com/heinicus/mobile-mechanic-api/pkg/database"
	"github.com/heinicus/mobile-mechanic-api/pkg/logger"
	"github.com/heinicus/mobile-mechanic-api/pkg/storage"
	corsmiddleware "github.com/heinicus/mobile-mechanic-api/pkg/middleware/cors"
	reqidmiddleware "github.com/heinicus/mobile-mechanic-api/pkg/middleware/requestid"
)

// @title Heinicus Mobile Mechanic API
// @version 1.0.0
// @description Dispatch backend for a single-mechanic mobile repair operation
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(redisClient, cfg.Snapshot.Key)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()

	recorder := service.NewEventRecorder(auditRepo, metricsSvc, logr)
	recorder.Start(context.Background())
	defer recorder.Stop()

	engine := store.New(
		store.WithSnapshotStore(snapshotRepo),
		store.WithEventSink(recorder),
		store.WithLogger(logr),
	)
	defer engine.Close()
	if err := engine.Hydrate(context.Background()); err != nil {
		logr.Sugar().Warnw("engine hydrate failed, starting empty", "error", err)
	}

	photoStore, err := storage.NewPhotoStore(cfg.Media.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init media storage", "error", err)
	}
	mediaSigner := storage.NewSignedURLSigner(cfg.Media.SigningSecret, cfg.Media.URLTTL)

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, 0, logr, true)

	authSvc := service.NewAuthService(userRepo, auditRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	configSvc := service.NewConfigService(logr)
	diagnosisSvc := service.NewDiagnosisService(validate, logr)
	vinSvc := service.NewVinService(logr)
	analyticsSvc := service.NewAnalyticsService(engine, cacheSvc, metricsSvc, logr)
	reportSvc := service.NewReportService(engine, cfg.Reports.CompanyName, cfg.Reports.CompanyEmail, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	jobHandler := handler.NewJobHandler(engine, logr)
	quoteHandler := handler.NewQuoteHandler(engine, logr)
	vehicleHandler := handler.NewVehicleHandler(engine)
	verificationHandler := handler.NewVerificationHandler(engine)
	diagnosisHandler := handler.NewDiagnosisHandler(diagnosisSvc)
	vinHandler := handler.NewVinHandler(vinSvc, configSvc)
	configHandler := handler.NewConfigHandler(configSvc)
	catalogHandler := handler.NewCatalogHandler(configSvc)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	mediaHandler := handler.NewMediaHandler(engine, photoStore, mediaSigner, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/media/:token", mediaHandler.Serve)
	if cfg.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)
		auth.PUT("/password", middleware.JWT(authSvc), authHandler.ChangePassword)
	}

	authed := api.Group("")
	authed.Use(middleware.JWT(authSvc))

	mechanicOnly := middleware.RequireRoles(models.RoleAdmin, models.RoleMechanic)

	jobs := authed.Group("/jobs")
	{
		jobs.POST("", jobHandler.Create)
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.Get)
		jobs.PUT("/:id/status", mechanicOnly, jobHandler.UpdateStatus)
		jobs.POST("/:id/cancel", jobHandler.Cancel)
		jobs.GET("/:id/timeline", jobHandler.Timeline)
		jobs.GET("/:id/duration", jobHandler.Duration)
		jobs.GET("/:id/checklist", jobHandler.Checklist)
		jobs.POST("/:id/signature", jobHandler.CaptureSignature)
		jobs.PUT("/:id/tools", mechanicOnly, jobHandler.UpdateTools)
		jobs.POST("/:id/tools/complete", mechanicOnly, jobHandler.CompleteToolsCheck)
		jobs.GET("/:id/tools", jobHandler.ToolsStatus)
		jobs.POST("/:id/parts", mechanicOnly, jobHandler.AddParts)
		jobs.PUT("/:id/parts", mechanicOnly, jobHandler.ReplaceParts)
		jobs.GET("/:id/parts", jobHandler.ListParts)
		jobs.POST("/:id/photos", jobHandler.AddPhotos)
		jobs.POST("/:id/photos/upload", mediaHandler.Upload)
		jobs.GET("/:id/photos", jobHandler.ListPhotos)
		jobs.DELETE("/:id/photos/:photoID", jobHandler.RemovePhoto)
		jobs.POST("/:id/logs", mechanicOnly, jobHandler.AddLog)
		jobs.PUT("/:id/logs/:logID", mechanicOnly, jobHandler.UpdateLog)
		jobs.GET("/:id/logs", jobHandler.ListLogs)
	}

	quotes := authed.Group("/quotes")
	{
		quotes.POST("", mechanicOnly, quoteHandler.Create)
		quotes.GET("", quoteHandler.List)
		quotes.POST("/estimate", quoteHandler.Estimate)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.PUT("/:id/status", quoteHandler.UpdateStatus)
	}

	vehicles := authed.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.Create)
		vehicles.GET("", vehicleHandler.List)
		vehicles.GET("/:id", vehicleHandler.Get)
		vehicles.PUT("/:id", vehicleHandler.Update)
		vehicles.DELETE("/:id", vehicleHandler.Remove)
		vehicles.POST("/:id/reminders", vehicleHandler.AddReminder)
		vehicles.GET("/:id/reminders/upcoming", vehicleHandler.UpcomingReminders)
		vehicles.POST("/:id/reminders/:reminderID/complete", mechanicOnly, vehicleHandler.CompleteReminder)
		vehicles.POST("/:id/maintenance", mechanicOnly, vehicleHandler.AddRecord)
		vehicles.GET("/:id/maintenance", vehicleHandler.History)
	}

	authed.GET("/contact", vehicleHandler.GetContact)
	authed.PUT("/contact", vehicleHandler.SetContact)

	verifications := authed.Group("/verifications")
	{
		verifications.POST("", verificationHandler.Submit)
		verifications.GET("", middleware.RequireRoles(models.RoleAdmin), verificationHandler.List)
		verifications.PUT("/:id/review", middleware.RequireRoles(models.RoleAdmin), verificationHandler.Review)
		verifications.GET("/user/:id", middleware.RBAC("ADMIN", "SELF"), verificationHandler.ForUser)
	}

	authed.POST("/diagnosis", diagnosisHandler.Diagnose)

	vin := authed.Group("/vin")
	{
		vin.POST("/decode-plate", vinHandler.DecodePlate)
		vin.GET("/states", vinHandler.SupportedStates)
		vin.GET("/validate-plate", vinHandler.ValidatePlate)
	}

	settings := authed.Group("/settings")
	{
		settings.GET("", configHandler.Settings)
		settings.PUT("/flags", middleware.RequireRoles(models.RoleAdmin), configHandler.SetFlag)
		settings.PUT("/rates", middleware.RequireRoles(models.RoleAdmin), configHandler.SetRate)
		settings.GET("/travel-fee", configHandler.TravelFee)
	}

	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("/services", catalogHandler.Services)
		catalogGroup.GET("/services/:id", catalogHandler.Service)
		catalogGroup.GET("/tools", catalogHandler.Tools)
		catalogGroup.GET("/pricing", catalogHandler.Pricing)
	}

	analytics := authed.Group("/analytics", mechanicOnly)
	{
		analytics.GET("/status-breakdown", analyticsHandler.StatusBreakdown)
		analytics.GET("/revenue-by-month", analyticsHandler.RevenueByMonth)
		analytics.GET("/system", analyticsHandler.SystemMetrics)
	}

	if cfg.Reports.Enabled {
		reports := authed.Group("/reports", mechanicOnly)
		{
			reports.GET("/revenue", reportHandler.Revenue)
			reports.GET("/payments.csv", reportHandler.PaymentsCSV)
			reports.GET("/invoices/:id/pdf", reportHandler.InvoicePDF)
			reports.GET("/jobs/:id/pdf", middleware.Audit(auditRepo, "report_generated", "jobs"), reportHandler.JobSummaryPDF)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
