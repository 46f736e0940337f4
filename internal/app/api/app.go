package apiapp

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	prom "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/handler/http"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/logger"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/memory"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/postgres"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/prometheus"
	"github.com/sm8ta/webike_bicycle_manager/internal/app"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/services"
)

// App is the reference bicycles REST backend.
type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	DB          *sql.DB
	RedisClient *redisClient.Client
	HTTPRouter  *http.Router
}

// New wires the backend. Without DB_HOST records live in memory.
func New(ctx context.Context, cfg *config.Container) (*App, error) {
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the bicycles API", map[string]interface{}{
		"app": cfg.App.Name,
		"env": cfg.App.Env,
	})

	cache, redisConn, err := app.NewCache(ctx, cfg.Redis, loggerAdapter)
	if err != nil {
		return nil, err
	}

	var (
		db   *sql.DB
		repo ports.BicycleRepository
	)
	if cfg.DB.Enabled() {
		db, err = postgres.Open(ctx, cfg.DB.DSN())
		if err != nil {
			closeAll(nil, redisConn)
			return nil, err
		}

		// Migrate DB
		if err := postgres.Migrate(db, "up"); err != nil {
			closeAll(db, redisConn)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		repo = postgres.NewBicycleRepository(db)
	} else {
		loggerAdapter.Warn("DB_HOST not set, bicycles are kept in memory", nil)
		repo = memory.NewBicycleRepository()
	}

	// Validate
	validate := validator.New()

	// Observability
	metrics := prometheus.NewPrometheusAdapter(prom.DefaultRegisterer)

	bicycleService := services.NewBicycleService(repo, loggerAdapter, validate, cache)
	bicycleHandler := http.NewBicycleHandler(bicycleService, loggerAdapter, metrics)

	router, err := http.NewRouter(cfg.API, bicycleHandler)
	if err != nil {
		closeAll(db, redisConn)
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:      cfg,
		Logger:      loggerAdapter,
		DB:          db,
		RedisClient: redisConn,
		HTTPRouter:  router,
	}, nil
}

func (a *App) Run() error {
	listenAddr := a.Config.API.Addr()
	a.Logger.Info("Starting HTTP server", map[string]interface{}{
		"addr": listenAddr,
	})

	if err := a.HTTPRouter.Serve(listenAddr); err != nil {
		a.Logger.Error("HTTP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	a.Logger.Info("Shutting down gracefully...", nil)

	if err := a.HTTPRouter.Shutdown(ctx); err != nil {
		a.Logger.Error("HTTP shutdown error", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Close database
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error("Database close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// Close Redis
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			a.Logger.Error("Redis close error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.Logger.Info("Application stopped successfully", nil)
	return nil
}

func closeAll(db *sql.DB, redisConn *redisClient.Client) {
	if db != nil {
		db.Close()
	}
	if redisConn != nil {
		redisConn.Close()
	}
}
