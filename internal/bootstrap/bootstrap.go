package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/sandesh/institutecrm/docs" // generated swagger docs
	appControllers "github.com/sandesh/institutecrm/internal/app/controllers"
	appMigrations "github.com/sandesh/institutecrm/internal/app/migrations"
	appRepos "github.com/sandesh/institutecrm/internal/app/repositories"
	appRoutes "github.com/sandesh/institutecrm/internal/app/routes"
	appServices "github.com/sandesh/institutecrm/internal/app/services"
	"github.com/sandesh/institutecrm/internal/config"
	"github.com/sandesh/institutecrm/internal/db"
	appMiddleware "github.com/sandesh/institutecrm/internal/middleware"
	pkgAuth "github.com/sandesh/institutecrm/internal/pkg/auth"
	"github.com/sandesh/institutecrm/internal/pkg/helpers"
	"github.com/sandesh/institutecrm/internal/pkg/logger"
	"github.com/sandesh/institutecrm/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService

	AuthService       *appServices.AuthService
	InquiryService    *appServices.InquiryService
	BatchService      *appServices.BatchService
	StudentService    *appServices.StudentService
	FeeService        *appServices.FeeService
	AttendanceService *appServices.AttendanceService
	OutreachService   *appServices.OutreachService
	UserService       *appServices.UserService
	DashboardService  *appServices.DashboardService

	AuthController       *appControllers.AuthController
	InquiryController    *appControllers.InquiryController
	BatchController      *appControllers.BatchController
	StudentController    *appControllers.StudentController
	FeeController        *appControllers.FeeController
	AttendanceController *appControllers.AttendanceController
	OutreachController   *appControllers.OutreachController
	UserController       *appControllers.UserController
	DashboardController  *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default accounts.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository)
	deps.BatchService = appServices.NewBatchService(deps.Repos.BatchRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.InquiryRepository, deps.Repos.FeeRepository)
	deps.FeeService = appServices.NewFeeService(deps.Repos.FeeRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.BatchRepository)
	deps.OutreachService = appServices.NewOutreachService(deps.Repos.OutreachRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.DashboardRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService)
	deps.BatchController = appControllers.NewBatchController(deps.BatchService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.FeeController = appControllers.NewFeeController(deps.FeeService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.OutreachController = appControllers.NewOutreachController(deps.OutreachService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Metrics())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.InquiryController,
		deps.BatchController,
		deps.StudentController,
		deps.FeeController,
		deps.AttendanceController,
		deps.OutreachController,
		deps.UserController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
