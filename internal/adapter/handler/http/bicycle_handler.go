package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/domain"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/ports"
	"github.com/sm8ta/webike_bicycle_manager/internal/core/services"
)

type BicycleHandler struct {
	bicycleService ports.BicycleService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

// BicycleRequest is the body of create and update. An id in the body is
// ignored.
type BicycleRequest struct {
	Brand string       `json:"brand" example:"Trek"`
	Model string       `json:"model" example:"Marlin"`
	Type  string       `json:"type" example:"MTB"`
	Color string       `json:"color" example:"Red"`
	Price domain.Price `json:"price" swaggertype:"number" example:"500"`
	Image string       `json:"image" example:"x.png"`
}

func (r *BicycleRequest) toDomain() *domain.Bicycle {
	return &domain.Bicycle{
		Brand: r.Brand,
		Model: r.Model,
		Type:  r.Type,
		Color: r.Color,
		Price: r.Price,
		Image: r.Image,
	}
}

func NewBicycleHandler(
	bicycleService ports.BicycleService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BicycleHandler {
	return &BicycleHandler{
		bicycleService: bicycleService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary List bicycles
// @Description Returns every bicycle in insertion order
// @Tags bicycles
// @Produce json
// @Success 200 {array} domain.Bicycle "Bicycles"
// @Failure 500 {object} errorResponse "Internal error"
// @Router /bicycles [get]
func (h *BicycleHandler) ListBicycles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bicycles, err := h.bicycleService.ListBicycles(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Failed to list bicycles")
		return
	}
	if bicycles == nil {
		bicycles = []*domain.Bicycle{}
	}

	c.JSON(http.StatusOK, bicycles)
}

// @Summary Create bicycle
// @Description Stores a new bicycle; the id is assigned by the server
// @Tags bicycles
// @Accept json
// @Produce json
// @Param request body BicycleRequest true "Bicycle"
// @Success 201 {object} domain.Bicycle "Created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Router /bicycles [post]
func (h *BicycleHandler) CreateBicycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bicycle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	created, err := h.bicycleService.CreateBicycle(c.Request.Context(), req.toDomain())
	if err != nil {
		h.respondError(c, err, "Failed to create bicycle")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary Get bicycle
// @Description Returns one bicycle by id
// @Tags bicycles
// @Produce json
// @Param id path string true "Bicycle id" example:"1"
// @Success 200 {object} domain.Bicycle "Bicycle"
// @Failure 404 {object} errorResponse "Bicycle not found"
// @Router /bicycles/{id} [get]
func (h *BicycleHandler) GetBicycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bicycle, err := h.bicycleService.GetBicycleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "Failed to get bicycle")
		return
	}

	c.JSON(http.StatusOK, bicycle)
}

// @Summary Replace bicycle
// @Description Replaces every field of a bicycle
// @Tags bicycles
// @Accept json
// @Produce json
// @Param id path string true "Bicycle id" example:"1"
// @Param request body BicycleRequest true "Bicycle"
// @Success 200 {object} domain.Bicycle "Updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Bicycle not found"
// @Router /bicycles/{id} [put]
func (h *BicycleHandler) UpdateBicycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bicycleID := c.Param("id")

	var req BicycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update bicycle", map[string]interface{}{
			"error":      err.Error(),
			"bicycle_id": bicycleID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.bicycleService.UpdateBicycle(c.Request.Context(), bicycleID, req.toDomain())
	if err != nil {
		h.respondError(c, err, "Failed to update bicycle")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary Delete bicycle
// @Tags bicycles
// @Param id path string true "Bicycle id" example:"1"
// @Success 204 "Deleted"
// @Failure 404 {object} errorResponse "Bicycle not found"
// @Router /bicycles/{id} [delete]
func (h *BicycleHandler) DeleteBicycle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if err := h.bicycleService.DeleteBicycle(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err, "Failed to delete bicycle")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BicycleHandler) respondError(c *gin.Context, err error, message string) {
	var validationErr *services.ValidationError
	switch {
	case errors.Is(err, domain.ErrBicycleNotFound), errors.Is(err, domain.ErrInvalidID):
		newErrorResponse(c, http.StatusNotFound, domain.ErrBicycleNotFound.Error())
	case errors.As(err, &validationErr):
		newErrorResponse(c, http.StatusBadRequest, validationErr.Error())
	default:
		h.logger.Error(message, map[string]interface{}{
			"error": err.Error(),
			"path":  c.Request.URL.Path,
		})
		newErrorResponse(c, http.StatusInternalServerError, message)
	}
}
