package app

import (
	"context"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
	redisClient "github.com/redis/go-redis/v9"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/backend"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/handler/http"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/logger"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/prometheus"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/render"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/services"
)

// App is the bicycle manager web client.
type App struct {
	Config      *config.Container
	Logger      ports.LoggerPort
	RedisClient *redisClient.Client
	HTTPRouter  *http.Router
}

func New(ctx context.Context, cfg *config.Container) (*App, error) {
	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the bicycle manager", map[string]interface{}{
		"app":     cfg.App.Name,
		"env":     cfg.App.Env,
		"backend": cfg.Backend.URL,
	})

	// Page sessions
	cache, redisConn, err := NewCache(ctx, cfg.Redis, loggerAdapter)
	if err != nil {
		return nil, err
	}

	// Observability
	metrics := prometheus.NewPrometheusAdapter(prom.DefaultRegisterer)

	// Backend client
	gateway, err := backend.New(cfg.Backend.URL, cfg.Backend.Timeout, metrics)
	if err != nil {
		closeRedis(redisConn)
		return nil, fmt.Errorf("failed to create backend client: %w", err)
	}

	// Services
	manager := services.NewManagerService(gateway, loggerAdapter)
	pages := services.NewPageService(cache, loggerAdapter, cfg.Session.TTL)

	renderer, err := render.NewRenderer()
	if err != nil {
		closeRedis(redisConn)
		return nil, err
	}

	// HTTP Handlers
	pageHandler := http.NewPageHandler(manager, pages, renderer, loggerAdapter, metrics)

	router, err := http.NewPageRouter(cfg.HTTP, cfg.Session, renderer, pageHandler)
	if err != nil {
		closeRedis(redisConn)
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	return &App{
		Config:      cfg,
		Logger:      loggerAdapter,
		RedisClient: redisConn,
		HTTPRouter:  router,
	}, nil
}

// Run blocks serving HTTP until Stop is called.
func (a *App) Run() error {
	listenAddr := a.Config.HTTP.Addr()
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

func closeRedis(conn *redisClient.Client) {
	if conn != nil {
		conn.Close()
	}
}
