package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
	"github.com/comitanigiacomo/habitricky/internal/core/services"
)

type MetricHandler struct {
	svc *services.MetricService
}

func NewMetricHandler(svc *services.MetricService) *MetricHandler {
	return &MetricHandler{svc: svc}
}

type setTodayRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

func (h *MetricHandler) RegisterRoutes(router *gin.RouterGroup) {
	metrics := router.Group("/metrics")
	{
		metrics.GET("", h.List)
		metrics.GET("/:id", h.Get)
		metrics.GET("/:id/stats", h.Stats)
		metrics.PUT("/:id/today", h.SetToday)
	}
}

// List godoc
// @Summary  List tracked metrics in declared order
// @Tags     metrics
// @Produce  json
// @Success  200 {array} domain.Metric
// @Router   /metrics [get]
func (h *MetricHandler) List(c *gin.Context) {
	metrics, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// Get godoc
// @Summary  Get a metric
// @Tags     metrics
// @Produce  json
// @Param    id path string true "Metric id"
// @Success  200 {object} domain.Metric
// @Failure  404 {object} errorResponse
// @Router   /metrics/{id} [get]
func (h *MetricHandler) Get(c *gin.Context) {
	metric, err := h.svc.Get(c.Request.Context(), domain.MetricID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metric)
}

// Stats godoc
// @Summary  Derived weekly statistics for a metric
// @Tags     metrics
// @Produce  json
// @Param    id path string true "Metric id"
// @Success  200 {object} domain.MetricStats
// @Failure  404 {object} errorResponse
// @Router   /metrics/{id}/stats [get]
func (h *MetricHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), domain.MetricID(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SetToday godoc
// @Summary  Replace today's value of a metric
// @Tags     metrics
// @Accept   json
// @Produce  json
// @Param    id   path string          true "Metric id"
// @Param    body body setTodayRequest true "New value"
// @Success  200 {object} domain.Metric
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /metrics/{id}/today [put]
func (h *MetricHandler) SetToday(c *gin.Context) {
	var req setTodayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	metric, err := h.svc.SetToday(c.Request.Context(), domain.MetricID(c.Param("id")), *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metric)
}
