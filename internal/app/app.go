package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/fuzumoe/gopaginate/configs"
	"github.com/fuzumoe/gopaginate/internal/handler"
	"github.com/fuzumoe/gopaginate/internal/logging"
	"github.com/fuzumoe/gopaginate/internal/metrics"
	"github.com/fuzumoe/gopaginate/internal/pagination"
	"github.com/fuzumoe/gopaginate/internal/repository"
	"github.com/fuzumoe/gopaginate/internal/server"
	"github.com/fuzumoe/gopaginate/internal/service"
)

// hookable functions for dependency injection
var (
	LoadConfig = configs.Load
	NewDB      = repository.NewDB
	MigrateDB  = repository.Migrate
	SeedDB     = repository.Seed
)

// Run loads config, opens DB, runs migrations, seeds fixtures and serves HTTP.
func Run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}

	if err := logging.Setup(nil, cfg.LogLevel, cfg.LogFormat); err != nil {
		return fmt.Errorf("logger setup error: %w", err)
	}

	// Resources attached below inherit this default.
	pagination.Configure(pagination.WithSize(cfg.PageSize))

	dbOpts := repository.DefaultDBOptions
	dbOpts.LogLevel = repository.GormLogLevel(cfg.LogLevel)
	db, err := NewDB(cfg.DatabaseURL, dbOpts)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}

	if err := MigrateDB(db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if err := SeedDB(db, cfg.SeedUsers); err != nil {
		return fmt.Errorf("seed error: %w", err)
	}

	userRepo := repository.NewUserRepo(db, pagination.WithSize(cfg.UserPageSize))
	m := metrics.New()

	healthHandler := handler.NewHealthHandler(service.NewHealthService(db, cfg.ServiceName))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo), m)

	gin.SetMode(cfg.ServerMode)
	router := gin.New()
	server.RegisterRoutes(router, m,
		[]server.RouteRegistrar{healthHandler},
		[]server.RouteRegistrar{userHandler},
	)

	log.Info().
		Str("addr", cfg.Addr()).
		Int("page_size", pagination.Options().Size).
		Int("user_page_size", userRepo.Pagination().Config().Size).
		Msg("server listening")
	if err := router.Run(cfg.Addr()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
