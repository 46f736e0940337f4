package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sm8ta/webike_bicycle_manager/docs"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/render"
	"github.com/sm8ta/webike_bicycle_manager/internal/config"
)

type Router struct {
	router *gin.Engine
	server *http.Server
}

func newEngine(cfg *config.HTTP) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// NewRouter builds the bicycles REST API.
func NewRouter(
	cfg *config.HTTP,
	bicycleHandler *BicycleHandler,
) (*Router, error) {
	router := newEngine(cfg)

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:  splitOrigins(cfg.AllowedOrigins),
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Bicycles routes
	bicycles := router.Group("/bicycles")
	{
		bicycles.GET("", bicycleHandler.ListBicycles)
		bicycles.POST("", bicycleHandler.CreateBicycle)
		bicycles.GET("/:id", bicycleHandler.GetBicycle)
		bicycles.PUT("/:id", bicycleHandler.UpdateBicycle)
		bicycles.DELETE("/:id", bicycleHandler.DeleteBicycle)
	}
	return newRouter(router), nil
}

// NewPageRouter builds the browser facing bicycle manager.
func NewPageRouter(
	cfg *config.HTTP,
	sessionCfg *config.Session,
	renderer *render.Renderer,
	pageHandler *PageHandler,
) (*Router, error) {
	router := newEngine(cfg)
	router.SetHTMLTemplate(renderer.Templates())
	// ids are path escaped by the list template and may contain '/'
	router.UseRawPath = true

	pages := router.Group("/")
	pages.Use(SessionMiddleware(sessionCfg.CookieName, sessionCfg.TTL, sessionCfg.Secure))
	{
		pages.GET("", pageHandler.Index)
		pages.POST("form", pageHandler.Submit)
		pages.POST("bicycles/:id/edit", pageHandler.Edit)
		pages.POST("bicycles/:id/delete", pageHandler.Delete)
	}
	return newRouter(router), nil
}

func newRouter(engine *gin.Engine) *Router {
	return &Router{
		router: engine,
		server: &http.Server{Handler: engine},
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Serve blocks until the server stops. A Shutdown is not an error.
func (r *Router) Serve(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	if err := r.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	return r.server.Shutdown(ctx)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
