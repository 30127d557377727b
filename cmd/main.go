package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Abinaya-R-2005/siddha-sub000/config"
	"github.com/Abinaya-R-2005/siddha-sub000/database"
	_ "github.com/Abinaya-R-2005/siddha-sub000/docs" // Swagger docs - auto-generated
	adminctrl "github.com/Abinaya-R-2005/siddha-sub000/internal/controller/admin"
	userctrl "github.com/Abinaya-R-2005/siddha-sub000/internal/controller/user"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/logger"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/middleware"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/model"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/repository"
	"github.com/Abinaya-R-2005/siddha-sub000/internal/service"
)

// @title Siddha Exam Prep API
// @version 1.0
// @description Exam-preparation platform API: registration and approval, question banks, timed attempts with re-attempt workflow, reviews and dashboards.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewSubjectRepository,
			repository.NewTestRepository,
			repository.NewAttemptRepository,
			repository.NewReattemptRepository,
			repository.NewReviewRepository,
		),

		// Services Layer
		fx.Provide(
			func(userRepo repository.UserRepository, cfg *config.Config) service.AuthService {
				return service.NewAuthService(userRepo, cfg.JWTSecret)
			},
			func(cfg *config.Config) (service.UploadService, error) {
				return service.NewUploadService(cfg.UploadDir)
			},
			service.NewApprovalService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewSubmissionService,
			service.NewReattemptService,
			service.NewReviewService,
			service.NewDashboardService,
			service.NewSubjectService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewUserTestController,
			userctrl.NewReviewController,
			adminctrl.NewAdminTestController,
			adminctrl.NewAdminUserController,
			adminctrl.NewReattemptAdminController,
			adminctrl.NewDashboardController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authService service.AuthService,
	authCtrl *userctrl.AuthController,
	userTestCtrl *userctrl.UserTestController,
	reviewCtrl *userctrl.ReviewController,
	adminTestCtrl *adminctrl.AdminTestController,
	adminUserCtrl *adminctrl.AdminUserController,
	reattemptCtrl *adminctrl.ReattemptAdminController,
	dashboardCtrl *adminctrl.DashboardController,
) {
	api := router.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", authCtrl.Register)
	api.POST("/auth/login", authCtrl.Login)
	api.GET("/reviews", reviewCtrl.ListReviews)
	router.Static("/uploads", cfg.UploadDir)

	// Authenticated, approved accounts only
	authed := api.Group("")
	authed.Use(middleware.Authenticate(authService), middleware.RequireApproved())
	{
		authed.GET("/profile", authCtrl.GetProfile)
		authed.PUT("/profile", authCtrl.UpdateProfile)
		authed.GET("/tests", userTestCtrl.ListTests)
		authed.GET("/tests/:test_id", userTestCtrl.GetTestForAttempt)
		authed.POST("/tests/:test_id/submit", userTestCtrl.SubmitAttempt)
		authed.POST("/tests/:test_id/reattempt", userTestCtrl.RequestReattempt)
		authed.GET("/my-attempts", userTestCtrl.MyAttempts)
		authed.GET("/attempts/:attempt_id", userTestCtrl.AttemptDetail)
		authed.GET("/dashboard", userTestCtrl.Dashboard)
		authed.POST("/reviews", reviewCtrl.UpsertReview)
		authed.PUT("/reviews", reviewCtrl.UpsertReview)
		authed.DELETE("/reviews", reviewCtrl.DeleteReview)
	}

	// Faculty and admin
	staff := api.Group("/admin")
	staff.Use(middleware.Authenticate(authService), middleware.RequireApproved(),
		middleware.RequireRole(model.RoleFaculty, model.RoleAdmin))
	{
		staff.POST("/tests", adminTestCtrl.CreateTest)
		staff.GET("/tests", adminTestCtrl.ListTests)
		staff.GET("/tests/:test_id", adminTestCtrl.GetTest)
		staff.PUT("/tests/:test_id", adminTestCtrl.UpdateTest)
		staff.PUT("/tests/:test_id/status", adminTestCtrl.SetTestStatus)
		staff.DELETE("/tests/:test_id", adminTestCtrl.DeleteTest)
		staff.POST("/uploads", adminTestCtrl.UploadFile)

		staff.GET("/reattempts", reattemptCtrl.ListRequests)
		staff.PUT("/reattempts/:request_id", reattemptCtrl.ResolveRequest)

		staff.GET("/dashboard", dashboardCtrl.Stats)
		staff.POST("/subjects", dashboardCtrl.CreateSubject)
		staff.GET("/subjects", dashboardCtrl.ListSubjects)
		staff.PUT("/subjects/:subject_id", dashboardCtrl.UpdateSubject)
		staff.DELETE("/subjects/:subject_id", dashboardCtrl.DeleteSubject)
	}

	// Admin only
	adminOnly := api.Group("/admin")
	adminOnly.Use(middleware.Authenticate(authService), middleware.RequireApproved(),
		middleware.RequireRole(model.RoleAdmin))
	{
		adminOnly.GET("/users", adminUserCtrl.ListUsers)
		adminOnly.POST("/users", adminUserCtrl.CreateStaff)
		adminOnly.PUT("/users/:user_id/approve", adminUserCtrl.ApproveUser)
		adminOnly.PUT("/users/:user_id/reject", adminUserCtrl.RejectUser)
		adminOnly.DELETE("/users/:user_id", adminUserCtrl.DeleteUser)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam prep API server starting on port %s", cfg.Server.Port)
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
		&model.Subject{},
		&model.Test{},
		&model.Question{},
		&model.Attempt{},
		&model.ReattemptRequest{},
		&model.Review{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully")
	return nil
}
