package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/academyadmin/academy-api/internal/app/controllers"
	"github.com/academyadmin/academy-api/internal/app/migrations"
	"github.com/academyadmin/academy-api/internal/app/repositories"
	"github.com/academyadmin/academy-api/internal/app/routes"
	"github.com/academyadmin/academy-api/internal/app/services"
	"github.com/academyadmin/academy-api/internal/config"
	"github.com/academyadmin/academy-api/internal/db"
	"github.com/academyadmin/academy-api/internal/middleware"
	"github.com/academyadmin/academy-api/internal/pkg/auth"
	"github.com/academyadmin/academy-api/internal/pkg/logger"
	"github.com/academyadmin/academy-api/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// DefaultConfigPath is read unless CONFIG_PATH points elsewhere
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	JWTService     *auth.JWTService
	AuthMiddleware *middleware.AuthMiddleware
	Controllers    *routes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.GetEnv("CONFIG_PATH", DefaultConfigPath))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to Postgres, applies pending migrations and seeds
// the first administrator when one is configured.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	pool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrations.NewMigrator(pool, lgr).MigrateFromDirectory(ctx, migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	admin := seed.AdminConfig{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Name:     cfg.Seed.AdminName,
	}
	if err := seed.CreateDefaultAdmin(ctx, repositories.NewUserRepository(pool), admin, lgr); err != nil {
		// Startup goes on; an administrator can still be created through POST /users
		lgr.Error().Err(err).Msg("Failed to create seed administrator, proceeding anyway...")
	}

	return pool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, conn db.TxBeginner, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = repositories.NewRepositories(conn)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		Expiration:  cfg.TokenLifetime(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = services.NewServices(deps.Repos, deps.JWTService, lgr)
	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService, lgr)

	deps.Controllers = &routes.Controllers{
		Auth:    controllers.NewAuthController(deps.Services.AuthService, cfg.IsProduction(), lgr),
		User:    controllers.NewUserController(deps.Services.UserService),
		Student: controllers.NewStudentController(deps.Services.StudentService),
		Academy: controllers.NewAcademyController(deps.Services.AcademyService),
		Course:  controllers.NewCourseController(deps.Services.CourseService),
		Enroll:  controllers.NewEnrollController(deps.Services.EnrollService),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := middleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(lgr),
		middleware.Metrics(routes.MetricsPath),
	)

	routes.SetupSwagger(router)
	routes.SetupRouter(router, cfg.Server.APIPrefix, deps.Controllers, deps.AuthMiddleware)

	return router, nil
}
