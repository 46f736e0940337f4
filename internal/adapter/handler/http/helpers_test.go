package http

import (
	"io"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/logger"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/memory"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/prometheus"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testHTTPConfig() *config.HTTP {
	return &config.HTTP{Env: "test", Port: "0", AllowedOrigins: "*"}
}

// newTestAPI returns the bicycles REST API backed by an in-memory store.
func newTestAPI(t *testing.T) (*Router, *memory.BicycleRepository) {
	t.Helper()

	repo := memory.NewBicycleRepository()
	log := logger.NewLoggerAdapterWithWriter("test", io.Discard)
	metrics := prometheus.NewPrometheusAdapter(prom.NewRegistry())
	svc := services.NewBicycleService(repo, log, validator.New(), memory.NewCache())

	router, err := NewRouter(testHTTPConfig(), NewBicycleHandler(svc, log, metrics))
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return router, repo
}
