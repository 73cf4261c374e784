package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/pesomatch/config"
	"github.com/lshigami/pesomatch/database"
	_ "github.com/lshigami/pesomatch/docs" // Swagger docs
	adminctrl "github.com/lshigami/pesomatch/internal/controller/admin"
	userctrl "github.com/lshigami/pesomatch/internal/controller/user"
	"github.com/lshigami/pesomatch/internal/logger"
	"github.com/lshigami/pesomatch/internal/middleware"
	"github.com/lshigami/pesomatch/internal/model"
	"github.com/lshigami/pesomatch/internal/repository"
	"github.com/lshigami/pesomatch/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title PESO Job Matching API
// @version 1.0
// @description Job board, pre-screening exams and reviewer grading for the Public Employment Service Office.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init("info", "json")

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			middleware.NewAuthenticator,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewQuestionRepository,
			repository.NewExamAttemptRepository,
			repository.NewExamAnswerRepository,
			repository.NewApplicationRepository,
			repository.NewCandidateRepository,
			repository.NewJobRepository,
			repository.NewCompanyRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewExamService,
			service.NewExamSubmissionService,
			service.NewGradingService,
			service.NewGradingAssistantService,
			service.NewListingService,
			service.NewApplicationService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewExamController,
			userctrl.NewListingController,
			userctrl.NewApplicationController,
			adminctrl.NewExamController,
			adminctrl.NewGradingController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	// Re-initialise now that LOG_LEVEL and LOG_FORMAT are known.
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 1 && corsCfg.AllowOrigins[0] == "*" {
		// Wildcard origins cannot be combined with credentials.
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	auth *middleware.Authenticator,
	examCtrl *userctrl.ExamController,
	listingCtrl *userctrl.ListingController,
	applicationCtrl *userctrl.ApplicationController,
	adminExamCtrl *adminctrl.ExamController,
	gradingCtrl *adminctrl.GradingController,
) {
	api := router.Group("/api/v1", auth.RequireAuth())
	{
		api.GET("/exams/:exam_id", examCtrl.GetExam)
		api.POST("/exams/:exam_id/submissions", examCtrl.SubmitExam)

		api.GET("/jobs", listingCtrl.ListJobs)
		api.GET("/companies", listingCtrl.ListCompanies)

		application := api.Group("/jobs/:job_id/application")
		application.POST("", applicationCtrl.StartApplication)
		application.GET("/progress", applicationCtrl.GetProgress)
		application.PUT("/resume-viewed", applicationCtrl.MarkResumeViewed)
		application.PUT("/id-upload", applicationCtrl.MarkIDUploaded)
		application.POST("/submit", applicationCtrl.SubmitApplication)
	}

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.POST("/exams", adminExamCtrl.CreateExam)
		admin.GET("/exams/:exam_id/attempts", adminExamCtrl.ListAttempts)

		admin.GET("/exam-attempts/:attempt_id", gradingCtrl.GetAttemptDetails)
		admin.PUT("/exam-attempts/:attempt_id/answers/:answer_id/grade", gradingCtrl.GradeAnswer)
		admin.POST("/exam-attempts/:attempt_id/recalculate", gradingCtrl.RecalculateScore)
		admin.POST("/exam-answers/:answer_id/suggestion", gradingCtrl.SuggestGrade)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("PESO job matching API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			return server.Shutdown(ctx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
