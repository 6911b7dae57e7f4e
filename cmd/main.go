package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/careerpath-ph/assessment-api/config"
	"github.com/careerpath-ph/assessment-api/database"
	_ "github.com/careerpath-ph/assessment-api/docs" // Swagger docs
	adminctrl "github.com/careerpath-ph/assessment-api/internal/controller/admin"
	userctrl "github.com/careerpath-ph/assessment-api/internal/controller/user"
	"github.com/careerpath-ph/assessment-api/internal/logger"
	"github.com/careerpath-ph/assessment-api/internal/middleware"
	"github.com/careerpath-ph/assessment-api/internal/model"
	"github.com/careerpath-ph/assessment-api/internal/repository"
	"github.com/careerpath-ph/assessment-api/internal/seed"
	"github.com/careerpath-ph/assessment-api/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CareerPath Assessment API
// @version 1.0
// @description Student self-assessment platform: MIPQ III multiple-intelligence inventory plus RIASEC interest inventory, scored into strand and career recommendations.
// @contact.name API Support
// @contact.email support@careerpath.ph
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewVersionRepository,
			repository.NewDomainRepository,
			repository.NewQuestionRepository,
			repository.NewAssessmentRepository,
			repository.NewResponseRepository,
			repository.NewDomainScoreRepository,
			repository.NewWeightRepository,
		),

		fx.Provide(
			service.NewRankerService,
			service.NewScoreAggregatorService,
			service.NewResultService,
			service.NewScoringPipelineService,
			service.NewAssessmentService,
			service.NewAuthService,
			service.NewAdminService,
			service.NewReportService,
		),

		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewAssessmentController,
			adminctrl.NewAdminController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedDatabase),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shut down")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("http_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the route table and owns the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *userctrl.AuthController,
	assessmentCtrl *userctrl.AssessmentController,
	adminCtrl *adminctrl.AdminController,
) {
	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", middleware.RequireAuth(cfg), authCtrl.Me)
	}

	assessments := api.Group("/assessments", middleware.RequireAuth(cfg))
	{
		assessments.POST("/start", assessmentCtrl.Start)
		assessments.GET("/history", assessmentCtrl.History)
		assessments.GET("/:id/questions", assessmentCtrl.Questions)
		assessments.POST("/:id/submit", assessmentCtrl.Submit)
		assessments.GET("/:id/result", assessmentCtrl.Result)
		assessments.GET("/:id/report", assessmentCtrl.Report)
	}

	adminGroup := api.Group("/admin", middleware.RequireAuth(cfg), middleware.RequireAdmin())
	{
		adminGroup.GET("/users", adminCtrl.ListUsers)
		adminGroup.GET("/analytics", adminCtrl.Analytics)
		adminGroup.GET("/questions", adminCtrl.ListQuestions)
		adminGroup.POST("/questions", adminCtrl.CreateQuestion)
		adminGroup.PUT("/questions/:id", adminCtrl.UpdateQuestion)
		adminGroup.DELETE("/questions/:id", adminCtrl.DeactivateQuestion)
		adminGroup.GET("/domains", adminCtrl.ListDomains)
		adminGroup.GET("/versions", adminCtrl.ListVersions)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.AssessmentVersion{},
		&model.Domain{},
		&model.Question{},
		&model.Assessment{},
		&model.Response{},
		&model.DomainScore{},
		&model.Strand{},
		&model.StrandWeight{},
		&model.Career{},
		&model.CareerWeight{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	// One in_progress assessment per user, enforced by the database as the
	// backstop behind the row-locked check in AssessmentService.Start.
	err = db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_assessment_one_in_progress
		ON assessments (user_id) WHERE status = 'in_progress'`).Error
	if err != nil {
		log.Error().Err(err).Msg("Creating partial unique index failed")
		return err
	}

	log.Info().Msg("Database migration completed")
	return nil
}

// SeedDatabase loads reference data on every start and, when SEED_DEMO is
// set, generates the demo students through the real scoring pipeline.
func SeedDatabase(db *gorm.DB, cfg *config.Config, pipeline service.ScoringPipelineService) error {
	if err := seed.Reference(db); err != nil {
		return err
	}
	if !cfg.Seed.Demo {
		return nil
	}
	rng := rand.New(rand.NewSource(cfg.Seed.Rand))
	return seed.NewDemoGenerator(db, pipeline, rng).Run()
}
