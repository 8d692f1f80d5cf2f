package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/habitricky/internal/core/domain"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "Unknown metric", err: fmt.Errorf("%w: steps", domain.ErrUnknownMetric), wantStatus: http.StatusNotFound},
		{name: "Unknown habit", err: domain.ErrUnknownHabit, wantStatus: http.StatusNotFound},
		{name: "Invalid name", err: domain.ErrInvalidName, wantStatus: http.StatusBadRequest},
		{name: "Invalid target", err: domain.ErrInvalidTarget, wantStatus: http.StatusBadRequest},
		{name: "Invalid metric value", err: domain.ErrInvalidMetricValue, wantStatus: http.StatusBadRequest},
		{name: "Seed direction errors are internal", err: domain.ErrInvalidDirection, wantStatus: http.StatusInternalServerError, wantBody: "internal server error"},
		{name: "Unexpected error", err: assert.AnError, wantStatus: http.StatusInternalServerError, wantBody: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
				assert.Len(t, c.Errors, 1)
			}
		})
	}
}
