package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownMetric), errors.Is(err, domain.ErrUnknownHabit):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidTarget),
		errors.Is(err, domain.ErrInvalidMetricValue):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
