package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/412299-Rodriguez/club-appointments/internal/backend"
)

func TestRespondBackendError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "backend rejection passes through",
			err:        &backend.APIError{StatusCode: http.StatusConflict, Message: "Session is full"},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error": "Session is full"}`,
		},
		{
			name:       "wrapped rejection still unwraps",
			err:        errors.Join(errors.New("loading catalog"), &backend.APIError{StatusCode: http.StatusNotFound, Message: "Training session not found"}),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "Training session not found"}`,
		},
		{
			name:       "transport failure is a bad gateway",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error": "booking service unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			RespondBackendError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
