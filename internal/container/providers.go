package container

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/catalog/handler"
	"github.com/narwhalmedia/catalog/internal/catalog/repository"
	"github.com/narwhalmedia/catalog/internal/catalog/service"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/kafka"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/nats"
	"github.com/narwhalmedia/catalog/pkg/auth"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/pkg/pagination"
)

// App is the assembled catalog service.
type App struct {
	Config    *config.CatalogConfig
	Logger    interfaces.Logger
	DB        *gorm.DB
	Migrator  *database.Migrator
	Publisher interfaces.EventPublisher
	JWT       *auth.JWTManager
	Router    *gin.Engine
}

// Server returns the HTTP server for the router.
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              config.GetListenAddress(&a.Config.Service),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// InfrastructureSet provides logging, storage, auth and the event publisher.
var InfrastructureSet = wire.NewSet(
	ProvideLogger,
	ProvideZap,
	wire.Bind(new(interfaces.Logger), new(*logger.ZapLogger)),
	ProvideDatabase,
	ProvideMigrator,
	repository.NewGormStore,
	wire.Bind(new(repository.Store), new(*repository.GormStore)),
	ProvideRBAC,
	auth.NewPolicyEnforcer,
	ProvideJWTManager,
	auth.NewAuthenticator,
	ProvideEventPublisher,
	ProvideLimits,
)

// ServiceSet provides the catalog use cases.
var ServiceSet = wire.NewSet(
	wire.Struct(new(service.Deps), "*"),
	service.NewDeveloperService,
	service.NewGenreService,
	service.NewPlatformService,
	service.NewCrewService,
	service.NewGameService,
	service.NewMovieService,
	service.NewMediaService,
	service.NewUserService,
	service.NewLikeService,
	service.NewReviewService,
)

// HTTPSet provides the gin router.
var HTTPSet = wire.NewSet(
	wire.Struct(new(handler.Services), "*"),
	handler.NewHandler,
	handler.NewRouter,
)

// ProvideLogger builds the zap logger from configuration.
func ProvideLogger(cfg *config.CatalogConfig) (*logger.ZapLogger, error) {
	lc := logger.DefaultConfig()
	if cfg.Logger.Development {
		lc = logger.DevelopmentConfig()
	}
	if cfg.Logger.Level != "" {
		lc.Level = cfg.Logger.Level
	}
	if cfg.Logger.Format != "" {
		lc.Encoding = cfg.Logger.Format
	}
	if cfg.Logger.OutputPath != "" {
		lc.OutputPaths = []string{cfg.Logger.OutputPath}
	}
	lc.InitialFields = map[string]interface{}{
		"service": cfg.Service.Name,
		"version": config.GetServiceVersion(&cfg.Service),
	}

	l, err := lc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// ProvideZap exposes the underlying zap logger for infrastructure packages.
func ProvideZap(l *logger.ZapLogger) *zap.Logger {
	return l.Zap()
}

// ProvideDatabase opens the configured database.
func ProvideDatabase(cfg *config.CatalogConfig, zl *zap.Logger) (*gorm.DB, func(), error) {
	dbCfg := cfg.Database.ToDatabaseConfig(cfg.Logger.Level == "debug")
	return database.Open(dbCfg, zl)
}

// ProvideMigrator returns a migrator loaded with the catalog schema.
func ProvideMigrator(db *gorm.DB, log interfaces.Logger) *database.Migrator {
	return database.NewMigrator(db, log, repository.Migrations()...)
}

// ProvideRBAC builds the role checker selected by auth.rbac_type.
func ProvideRBAC(cfg *config.CatalogConfig, log interfaces.Logger) (auth.RBACInterface, error) {
	return auth.NewRBACFromConfig(auth.RBACConfig{
		Type:             auth.RBACType(cfg.Auth.RBACType),
		CasbinModelPath:  cfg.Auth.RBACModelPath,
		CasbinPolicyPath: cfg.Auth.RBACPolicyPath,
		Logger:           log,
	})
}

// ProvideJWTManager creates the token issuer and validator.
func ProvideJWTManager(cfg *config.CatalogConfig) *auth.JWTManager {
	return auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTokenDuration)
}

// ProvideLimits returns the configured page bounds.
func ProvideLimits(cfg *config.CatalogConfig) pagination.Limits {
	limits := pagination.DefaultLimits()
	if cfg.Pagination.DefaultPageSize > 0 {
		limits.DefaultSize = cfg.Pagination.DefaultPageSize
	}
	if cfg.Pagination.MaxPageSize > 0 {
		limits.MaxSize = cfg.Pagination.MaxPageSize
	}
	return limits
}

// ProvideEventPublisher connects the publisher selected by catalog.events.driver.
// The "none" driver returns a nil publisher and events are dropped.
func ProvideEventPublisher(ctx context.Context, cfg *config.CatalogConfig, zl *zap.Logger, log interfaces.Logger) (interfaces.EventPublisher, func(), error) {
	ec := cfg.Catalog.Events

	var (
		publisher interfaces.EventPublisher
		err       error
	)
	switch ec.Driver {
	case "none":
		return nil, func() {}, nil
	case "", config.EventsDriverLocal:
		publisher = events.NewLocalPublisher(log)
	case config.EventsDriverNATS:
		client, cleanup, cerr := nats.NewClient(ctx, ec.NATS, zl)
		if cerr != nil {
			return nil, nil, cerr
		}
		publisher = nats.NewPublisher(client.JetStream(), zl, cleanup)
	case config.EventsDriverKafka:
		publisher, err = kafka.NewPublisher(ec.Kafka, cfg.Service.Name, zl)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unsupported events driver: %q", ec.Driver)
	}

	log.Info("Event publisher ready", interfaces.String("driver", ec.Driver))

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher", interfaces.Error(err))
		}
	}
	return publisher, cleanup, nil
}
