package models_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aireclaro/aireclaro/internal/api/models"
)

func TestNewProblem(t *testing.T) {
	p := models.NewProblem(
		models.ProblemTypeValidation,
		"Validation error",
		http.StatusBadRequest,
		"req_test123",
	)

	assert.Equal(t, models.ProblemTypeValidation, p.Type)
	assert.Equal(t, "Validation error", p.Title)
	assert.Equal(t, http.StatusBadRequest, p.Status)
	assert.Equal(t, "req_test123", p.TraceID)
	assert.Empty(t, p.Detail)
	assert.Empty(t, p.Instance)
	assert.Nil(t, p.Errors)
}

func TestProblem_BuilderChaining(t *testing.T) {
	fieldErrors := []models.FieldError{
		{Field: "lat", Message: "must be a number", Code: "INVALID"},
		{Field: "lon", Message: "required", Code: "REQUIRED"},
	}

	p := models.NewProblem(
		models.ProblemTypeValidation,
		"Validation error",
		http.StatusBadRequest,
		"req_test123",
	).
		WithDetail("lat must be between -90 and 90").
		WithInstance("/api/dashboard").
		WithErrors(fieldErrors)

	assert.Equal(t, "lat must be between -90 and 90", p.Detail)
	assert.Equal(t, "/api/dashboard", p.Instance)
	require.Len(t, p.Errors, 2)
	assert.Equal(t, "lat", p.Errors[0].Field)
	assert.Equal(t, "must be a number", p.Errors[0].Message)
	assert.Equal(t, "INVALID", p.Errors[0].Code)
}

func TestProblem_Write(t *testing.T) {
	p := models.NewBadRequest("req_test123", "invalid input", []models.FieldError{
		{Field: "lat", Message: "must be a number"},
	}).WithInstance("/api/dashboard")

	w := httptest.NewRecorder()
	p.Write(w)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
	assert.Equal(t, "req_test123", w.Header().Get("X-Request-Id"))

	var result models.Problem
	err := json.Unmarshal(w.Body.Bytes(), &result)
	require.NoError(t, err)

	assert.Equal(t, models.ProblemTypeValidation, result.Type)
	assert.Equal(t, "Validation error", result.Title)
	assert.Equal(t, http.StatusBadRequest, result.Status)
	assert.Equal(t, "invalid input", result.Detail)
	assert.Equal(t, "/api/dashboard", result.Instance)
	assert.Equal(t, "req_test123", result.TraceID)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "lat", result.Errors[0].Field)
}

func TestProblemConstructors(t *testing.T) {
	tests := []struct {
		name       string
		problem    *models.Problem
		wantType   string
		wantTitle  string
		wantStatus int
		wantDetail string
	}{
		{
			name:       "bad request",
			problem:    models.NewBadRequest("req_123", "invalid data", nil),
			wantType:   models.ProblemTypeValidation,
			wantTitle:  "Validation error",
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid data",
		},
		{
			name:       "not found",
			problem:    models.NewNotFound("req_123", "route not found"),
			wantType:   models.ProblemTypeNotFound,
			wantTitle:  "Not found",
			wantStatus: http.StatusNotFound,
			wantDetail: "route not found",
		},
		{
			name:       "too many requests",
			problem:    models.NewTooManyRequests("req_123", "rate limit exceeded"),
			wantType:   models.ProblemTypeTooManyRequests,
			wantTitle:  "Too many requests",
			wantStatus: http.StatusTooManyRequests,
			wantDetail: "rate limit exceeded",
		},
		{
			name:       "internal error",
			problem:    models.NewInternalError("req_123", "renderer failure"),
			wantType:   models.ProblemTypeInternal,
			wantTitle:  "Internal server error",
			wantStatus: http.StatusInternalServerError,
			wantDetail: "renderer failure",
		},
		{
			name:       "bad gateway",
			problem:    models.NewBadGateway("req_123", "air quality providers unavailable"),
			wantType:   models.ProblemTypeBadGateway,
			wantTitle:  "Upstream unavailable",
			wantStatus: http.StatusBadGateway,
			wantDetail: "air quality providers unavailable",
		},
		{
			name:       "service unavailable",
			problem:    models.NewServiceUnavailable("req_123", "shutting down"),
			wantType:   models.ProblemTypeUnavailable,
			wantTitle:  "Service unavailable",
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "shutting down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.problem.Type)
			assert.Equal(t, tt.wantTitle, tt.problem.Title)
			assert.Equal(t, tt.wantStatus, tt.problem.Status)
			assert.Equal(t, tt.wantDetail, tt.problem.Detail)
			assert.Equal(t, "req_123", tt.problem.TraceID)
		})
	}
}
