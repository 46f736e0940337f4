package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_bicycle_manager/internal/adapter/render"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/services"
)

// PageHandler serves the bicycle manager page. Every action answers 200
// with the page as it stands after the action; backend failures only
// show up in the logs.
type PageHandler struct {
	manager  *services.ManagerService
	pages    ports.PageStore
	renderer *render.Renderer
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
}

func NewPageHandler(
	manager *services.ManagerService,
	pages ports.PageStore,
	renderer *render.Renderer,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PageHandler {
	return &PageHandler{
		manager:  manager,
		pages:    pages,
		renderer: renderer,
		logger:   logger,
		metrics:  metrics,
	}
}

// Index is a page load: edit mode and form are reset and the list is
// fetched again.
func (h *PageHandler) Index(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page := domain.NewPage()
	_ = h.manager.LoadList(c.Request.Context(), page)

	h.saveAndRender(c, page)
}

func (h *PageHandler) Submit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page := h.loadPage(c)

	var form domain.Form
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("Failed to read bicycle form", map[string]interface{}{
			"error": err.Error(),
		})
		h.render(c, page)
		return
	}

	_ = h.manager.Submit(c.Request.Context(), page, form)

	h.saveAndRender(c, page)
}

func (h *PageHandler) Edit(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page := h.loadPage(c)
	_ = h.manager.BeginEdit(c.Request.Context(), page, domain.BicycleID(c.Param("id")))

	h.saveAndRender(c, page)
}

func (h *PageHandler) Delete(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	page := h.loadPage(c)
	_ = h.manager.DeleteBicycle(c.Request.Context(), page, domain.BicycleID(c.Param("id")))

	h.saveAndRender(c, page)
}

func (h *PageHandler) loadPage(c *gin.Context) *domain.Page {
	sessionID := getSessionID(c)
	page, err := h.pages.Load(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("Failed to load page session", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
		return domain.NewPage()
	}
	return page
}

func (h *PageHandler) saveAndRender(c *gin.Context, page *domain.Page) {
	sessionID := getSessionID(c)
	if err := h.pages.Save(c.Request.Context(), sessionID, page); err != nil {
		h.logger.Error("Failed to save page session", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
	}
	h.render(c, page)
}

func (h *PageHandler) render(c *gin.Context, page *domain.Page) {
	view, err := h.renderer.Page(page)
	if err != nil {
		h.logger.Error("Failed to render page", map[string]interface{}{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.HTML(http.StatusOK, render.PageTemplateName, view)
}
