package models

import (
	"encoding/json"
	"net/http"
)

// Problem is an RFC7807 error response. All API errors render as
// application/problem+json.
type Problem struct {
	// Type is a URI reference identifying the problem type.
	Type string `json:"type"`

	// Title is a short human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`

	// Detail explains this specific occurrence.
	Detail string `json:"detail,omitempty"`

	// Instance is a URI reference for this specific occurrence.
	Instance string `json:"instance,omitempty"`

	// TraceID carries the request identifier for log correlation.
	TraceID string `json:"traceId"`

	// Errors holds structured field validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError represents a validation error on a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Problem type URIs served by the API.
const (
	ProblemTypeValidation      = "https://api.aireclaro.mx/problems/validation-error"
	ProblemTypeNotFound        = "https://api.aireclaro.mx/problems/not-found"
	ProblemTypeTooManyRequests = "https://api.aireclaro.mx/problems/too-many-requests"
	ProblemTypeInternal        = "https://api.aireclaro.mx/problems/internal-error"
	ProblemTypeBadGateway      = "https://api.aireclaro.mx/problems/upstream-unavailable"
	ProblemTypeUnavailable     = "https://api.aireclaro.mx/problems/service-unavailable"
)

func newProblem(problemType, title string, status int, traceID, detail string) *Problem {
	return &Problem{
		Type:    problemType,
		Title:   title,
		Status:  status,
		TraceID: traceID,
		Detail:  detail,
	}
}

// NewProblem creates a Problem with no detail set.
func NewProblem(problemType, title string, status int, traceID string) *Problem {
	return newProblem(problemType, title, status, traceID, "")
}

// WithDetail sets the detail message and returns the Problem for chaining.
func (p *Problem) WithDetail(detail string) *Problem {
	p.Detail = detail
	return p
}

// WithInstance sets the occurrence URI and returns the Problem for chaining.
func (p *Problem) WithInstance(instance string) *Problem {
	p.Instance = instance
	return p
}

// WithErrors attaches field errors and returns the Problem for chaining.
func (p *Problem) WithErrors(errors []FieldError) *Problem {
	p.Errors = errors
	return p
}

// Write writes the Problem as JSON to the ResponseWriter.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Request-Id", p.TraceID)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// NewBadRequest creates a 400 validation problem.
func NewBadRequest(traceID, detail string, errors []FieldError) *Problem {
	return newProblem(ProblemTypeValidation, "Validation error", http.StatusBadRequest, traceID, detail).
		WithErrors(errors)
}

// NewNotFound creates a 404 Not Found problem.
func NewNotFound(traceID, detail string) *Problem {
	return newProblem(ProblemTypeNotFound, "Not found", http.StatusNotFound, traceID, detail)
}

// NewTooManyRequests creates a 429 Too Many Requests problem.
func NewTooManyRequests(traceID, detail string) *Problem {
	return newProblem(ProblemTypeTooManyRequests, "Too many requests", http.StatusTooManyRequests, traceID, detail)
}

// NewInternalError creates a 500 Internal Server Error problem.
func NewInternalError(traceID, detail string) *Problem {
	return newProblem(ProblemTypeInternal, "Internal server error", http.StatusInternalServerError, traceID, detail)
}

// NewBadGateway creates a 502 problem for upstream provider failures.
func NewBadGateway(traceID, detail string) *Problem {
	return newProblem(ProblemTypeBadGateway, "Upstream unavailable", http.StatusBadGateway, traceID, detail)
}

// NewServiceUnavailable creates a 503 Service Unavailable problem.
func NewServiceUnavailable(traceID, detail string) *Problem {
	return newProblem(ProblemTypeUnavailable, "Service unavailable", http.StatusServiceUnavailable, traceID, detail)
}
