package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/habitricky/internal/core/services"
)

type ReportHandler struct {
	reports   *services.ReportService
	attention *services.AttentionService
}

func NewReportHandler(reports *services.ReportService, attention *services.AttentionService) *ReportHandler {
	return &ReportHandler{
		reports:   reports,
		attention: attention,
	}
}

func (h *ReportHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/attention", h.Attention)

	reports := r.Group("/reports")
	{
		reports.GET("/weekly", h.Weekly)
		reports.GET("/summary", h.Summary)
		reports.GET("/correlations", h.Correlations)
	}
}

// Attention godoc
// @Summary  Metrics missing their goal today, in declared order
// @Tags     reports
// @Produce  json
// @Success  200 {object} domain.Attention
// @Router   /attention [get]
func (h *ReportHandler) Attention(c *gin.Context) {
	attention, err := h.attention.MetricsNeedingAttention(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attention)
}

// Weekly godoc
// @Summary  Per-day composite of habit and metric goal percentages
// @Tags     reports
// @Produce  json
// @Success  200 {array} domain.WeeklyAggregatePoint
// @Router   /reports/weekly [get]
func (h *ReportHandler) Weekly(c *gin.Context) {
	points, err := h.reports.WeeklyComposite(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// Summary godoc
// @Summary  Trailing week summary ratios
// @Tags     reports
// @Produce  json
// @Success  200 {object} domain.SummaryRatios
// @Router   /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reports.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Correlations godoc
// @Summary  Behaviour correlation statements
// @Tags     reports
// @Produce  json
// @Success  200 {object} map[string][]string
// @Router   /reports/correlations [get]
func (h *ReportHandler) Correlations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"correlations": h.reports.Correlations()})
}
