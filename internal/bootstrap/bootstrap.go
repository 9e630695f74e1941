package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appAuth "github.com/lucianaf/vspotlight/internal/app/auth"
	appControllers "github.com/lucianaf/vspotlight/internal/app/controllers"
	appMigrations "github.com/lucianaf/vspotlight/internal/app/migrations"
	appRepos "github.com/lucianaf/vspotlight/internal/app/repositories"
	appRoutes "github.com/lucianaf/vspotlight/internal/app/routes"
	appServices "github.com/lucianaf/vspotlight/internal/app/services"
	"github.com/lucianaf/vspotlight/internal/config"
	"github.com/lucianaf/vspotlight/internal/db"
	appMiddleware "github.com/lucianaf/vspotlight/internal/middleware"
	pkgAuth "github.com/lucianaf/vspotlight/internal/pkg/auth"
	"github.com/lucianaf/vspotlight/internal/pkg/helpers"
	"github.com/lucianaf/vspotlight/internal/pkg/logger"
	"github.com/lucianaf/vspotlight/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	EventService         appServices.EventService
	CommentService       appServices.CommentService
	RSVPService          appServices.RSVPService
	OrgRequestService    appServices.OrgRequestService
	CalendarService      appServices.CalendarService
	AuthController       *appControllers.AuthController
	EventController      *appControllers.EventController
	RSVPController       *appControllers.RSVPController
	OrgRequestController *appControllers.OrgRequestController
	CalendarController   *appControllers.CalendarController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Guard                *appAuth.Guard
	Logger               zerolog.Logger
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
// seeds the dean account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// The dean account must exist before any request can be approved
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data")
		return nil, fmt.Errorf("seeding default data failed: %w", err)
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.Guard = appAuth.NewGuard()

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		cfg.University.EmailDomain,
	)
	deps.EventService = appServices.NewEventService(
		deps.Repos.EventRepository,
		deps.Repos.RSVPRepository,
		deps.Guard,
	)
	deps.CommentService = appServices.NewCommentService(
		deps.Repos.CommentRepository,
		deps.Repos.EventRepository,
		deps.Guard,
	)
	deps.RSVPService = appServices.NewRSVPService(
		database,
		deps.Repos.RSVPRepository,
		deps.Repos.MatchRepository,
		deps.Repos.EventRepository,
		deps.Repos.UserRepository,
	)
	deps.OrgRequestService = appServices.NewOrgRequestService(
		database,
		deps.Repos.OrgRequestRepository,
		deps.Repos.UserRepository,
		deps.Guard,
	)
	deps.CalendarService = appServices.NewCalendarService(
		deps.Repos.EventRepository,
		deps.Repos.RSVPRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.EventController = appControllers.NewEventController(deps.EventService, deps.CommentService)
	deps.RSVPController = appControllers.NewRSVPController(deps.RSVPService)
	deps.OrgRequestController = appControllers.NewOrgRequestController(deps.OrgRequestService, deps.AuthService)
	deps.CalendarController = appControllers.NewCalendarController(deps.CalendarService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.EventController,
		deps.RSVPController,
		deps.OrgRequestController,
		deps.CalendarController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
