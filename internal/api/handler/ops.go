package handler

import (
	"net/http"
	"time"

	"github.com/aireclaro/aireclaro/internal/api/models"
	"github.com/aireclaro/aireclaro/internal/api/response"
	"github.com/aireclaro/aireclaro/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	serviceName string
	version     string
	registry    *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler. The registry may be nil, in which
// case readiness reports no providers.
func NewOpsHandler(serviceName, version string, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		serviceName: serviceName,
		version:     version,
		registry:    registry,
	}
}

// HealthCheck handles GET /api/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status:  "healthy",
		Service: h.serviceName,
		Version: h.version,
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /api/ready - readiness including the circuit
// breaker state of each upstream provider.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	providers := []models.ProviderStatus{}
	if h.registry != nil {
		for _, ph := range h.registry.GetAllHealth() {
			providers = append(providers, providerStatus(ph))
		}
	}

	status := overallStatus(providers)
	readiness := models.Readiness{
		Status:    status,
		Time:      models.Timestamp(time.Now()),
		Providers: providers,
	}

	code := http.StatusOK
	if status == models.HealthStatusFail {
		code = http.StatusServiceUnavailable
	}
	response.JSON(w, r, code, readiness)
}

func providerStatus(ph *resilience.ProviderHealth) models.ProviderStatus {
	status := models.HealthStatusOK
	switch {
	case ph.IsUnhealthy():
		status = models.HealthStatusFail
	case ph.IsDegraded():
		status = models.HealthStatusDegraded
	}

	ps := models.ProviderStatus{
		Provider:     ph.Name,
		Status:       status,
		CircuitState: ph.CircuitState.String(),
	}
	if ph.LastSuccessAt != nil {
		ts := models.Timestamp(*ph.LastSuccessAt)
		ps.LastSuccessAt = &ts
	}
	if ph.LastFailureAt != nil {
		ts := models.Timestamp(*ph.LastFailureAt)
		ps.LastFailureAt = &ts
	}
	if ph.LastError != "" {
		msg := ph.LastError
		ps.Message = &msg
	}
	return ps
}

// overallStatus folds the provider statuses into a single readiness value.
// The service still answers from cache or fallback data when providers are
// down, so readiness only fails when every provider circuit is open.
func overallStatus(providers []models.ProviderStatus) models.HealthStatus {
	if len(providers) == 0 {
		return models.HealthStatusOK
	}

	failed := 0
	degraded := 0
	for _, p := range providers {
		switch p.Status {
		case models.HealthStatusFail:
			failed++
		case models.HealthStatusDegraded:
			degraded++
		}
	}

	switch {
	case failed == len(providers):
		return models.HealthStatusFail
	case failed > 0 || degraded > 0:
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusOK
	}
}
