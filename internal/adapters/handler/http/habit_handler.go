package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/habitricky/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type addHabitRequest struct {
	Name   string  `json:"name"`
	Target float64 `json:"target"`
	Unit   string  `json:"unit"`
}

type updateTargetRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

type habitView struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Target         float64 `json:"target"`
	Unit           string  `json:"unit"`
	Completed      bool    `json:"completed"`
	Streak         int     `json:"streak"`
	StreakProgress float64 `json:"streak_progress"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Add)
		habits.GET("", h.List)
		habits.GET("/summary", h.Summary)
		habits.GET("/history", h.History)
		habits.POST("/:id/toggle", h.Toggle)
		habits.PUT("/:id/target", h.UpdateTarget)
	}
}

func parseHabitID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid habit id"})
		return 0, false
	}
	return id, true
}

// Add godoc
// @Summary  Add a habit
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    body body addHabitRequest true "Habit"
// @Success  201 {object} habitView
// @Failure  400 {object} errorResponse
// @Router   /habits [post]
func (h *HabitHandler) Add(c *gin.Context) {
	var req addHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	habit, err := h.svc.AddHabit(c.Request.Context(), services.AddHabitInput{
		Name:   req.Name,
		Target: req.Target,
		Unit:   req.Unit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newHabitView(habit))
}

// List godoc
// @Summary  List habits ordered by id
// @Tags     habits
// @Produce  json
// @Success  200 {array} habitView
// @Router   /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	habits, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]habitView, 0, len(habits))
	for _, habit := range habits {
		views = append(views, newHabitView(habit))
	}
	c.JSON(http.StatusOK, views)
}

// Toggle godoc
// @Summary  Flip today's completion flag of a habit
// @Tags     habits
// @Produce  json
// @Param    id path int true "Habit id"
// @Success  200 {object} habitView
// @Failure  404 {object} errorResponse
// @Router   /habits/{id}/toggle [post]
func (h *HabitHandler) Toggle(c *gin.Context) {
	id, ok := parseHabitID(c)
	if !ok {
		return
	}

	habit, err := h.svc.ToggleCompletion(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHabitView(habit))
}

// UpdateTarget godoc
// @Summary  Replace the target of a habit
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    id   path int                 true "Habit id"
// @Param    body body updateTargetRequest true "New target"
// @Success  200 {object} habitView
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /habits/{id}/target [put]
func (h *HabitHandler) UpdateTarget(c *gin.Context) {
	id, ok := parseHabitID(c)
	if !ok {
		return
	}

	var req updateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	habit, err := h.svc.UpdateTarget(c.Request.Context(), id, *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newHabitView(habit))
}

// Summary godoc
// @Summary  Completed and total habit counts for today
// @Tags     habits
// @Produce  json
// @Success  200 {object} domain.CompletionSummary
// @Router   /habits/summary [get]
func (h *HabitHandler) Summary(c *gin.Context) {
	summary, err := h.svc.CompletionSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// History godoc
// @Summary  Habit completion over the last 7 days
// @Tags     habits
// @Produce  json
// @Success  200 {array} domain.HabitDay
// @Router   /habits/history [get]
func (h *HabitHandler) History(c *gin.Context) {
	history, err := h.svc.History(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
