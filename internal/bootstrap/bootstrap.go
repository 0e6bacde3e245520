// Package bootstrap wires configuration, storage and HTTP dependencies.
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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/dapi/studenttrack/internal/app/controllers"
	appMigrations "github.com/dapi/studenttrack/internal/app/migrations"
	appRepos "github.com/dapi/studenttrack/internal/app/repositories"
	appRoutes "github.com/dapi/studenttrack/internal/app/routes"
	appServices "github.com/dapi/studenttrack/internal/app/services"
	"github.com/dapi/studenttrack/internal/config"
	"github.com/dapi/studenttrack/internal/db"
	appMiddleware "github.com/dapi/studenttrack/internal/middleware"
	pkgAuth "github.com/dapi/studenttrack/internal/pkg/auth"
	"github.com/dapi/studenttrack/internal/pkg/logger"
	"github.com/dapi/studenttrack/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	JWTService           *pkgAuth.JWTService
	PlacementService     *appServices.PlacementService
	AuthService          *appServices.AuthService
	StudentService       *appServices.StudentService
	SkillService         *appServices.SkillService
	AchievementService   *appServices.AchievementService
	CertificationService *appServices.CertificationService

	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	RecordsController *appControllers.RecordsController
	StaffController   *appControllers.StaffController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default staff account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		// The app still works without the default account.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accessExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.PlacementService = appServices.NewPlacementService(appServices.PlacementStores{
		Students:       deps.Repos.StudentRepository,
		Skills:         deps.Repos.SkillRepository,
		Achievements:   deps.Repos.AchievementRepository,
		Certifications: deps.Repos.CertificationRepository,
	})

	deps.AuthService = appServices.NewAuthService(
		dbPool,
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.PlacementService,
		deps.JWTService,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.SkillRepository,
		deps.Repos.AchievementRepository,
		deps.Repos.CertificationRepository,
		deps.PlacementService,
		lgr,
	)
	deps.SkillService = appServices.NewSkillService(deps.Repos.SkillRepository, deps.PlacementService, lgr)
	deps.AchievementService = appServices.NewAchievementService(deps.Repos.AchievementRepository, deps.PlacementService, lgr)
	deps.CertificationService = appServices.NewCertificationService(deps.Repos.CertificationRepository, deps.PlacementService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.RecordsController = appControllers.NewRecordsController(
		deps.SkillService,
		deps.AchievementService,
		deps.CertificationService,
		lgr,
	)
	deps.StaffController = appControllers.NewStaffController(
		deps.StudentService,
		deps.SkillService,
		deps.Repos.StudentRepository,
		lgr,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, dbPool *pgxpool.Pool, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.RecordsController,
		deps.StaffController,
		deps.AuthMiddleware,
		dbPool,
	)

	lgr.Info().Str("mode", cfg.Server.Mode).Msg("Router configured")
	return router
}
