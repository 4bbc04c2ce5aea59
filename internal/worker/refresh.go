package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aireclaro/aireclaro/internal/dashboard"
)

// DashboardService builds and caches the dashboard payload for a coordinate.
// Satisfied by dashboard.Service.
type DashboardService interface {
	GetDashboard(ctx context.Context, lat, lon float64) (*dashboard.Payload, error)
}

// RefreshJob warms the dashboard cache for the configured cities.
type RefreshJob struct {
	config    RefreshConfig
	logger    zerolog.Logger
	dashboard DashboardService

	metrics *RefreshMetrics
}

// RefreshMetrics tracks warm job statistics.
type RefreshMetrics struct {
	mu sync.RWMutex

	// Counters
	TotalRuns    int64
	WarmedPoints int64
	FailedPoints int64

	// Timings
	LastRunAt       time.Time
	LastRunDuration time.Duration
	TotalDuration   time.Duration
}

// RefreshJobConfig holds configuration for creating a RefreshJob.
type RefreshJobConfig struct {
	Config    RefreshConfig
	Logger    zerolog.Logger
	Dashboard DashboardService
}

// NewRefreshJob creates a new warm job processor.
func NewRefreshJob(cfg RefreshJobConfig) *RefreshJob {
	config := cfg.Config
	if len(config.Targets) == 0 {
		config.Targets = DefaultRefreshTargets()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 3
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &RefreshJob{
		config:    config,
		logger:    cfg.Logger,
		dashboard: cfg.Dashboard,
		metrics:   &RefreshMetrics{},
	}
}

// RefreshResult contains the result of a warm run.
type RefreshResult struct {
	StartTime   time.Time
	EndTime     time.Time
	Duration    time.Duration
	TotalPoints int
	Warmed      int
	Failed      int
	Errors      []RefreshError
}

// RefreshError represents a point that could not be warmed.
type RefreshError struct {
	City  string
	Point Point
	Error string
}

// Run warms the dashboard for every configured point.
func (j *RefreshJob) Run(ctx context.Context) *RefreshResult {
	startTime := time.Now()
	result := &RefreshResult{
		StartTime:   startTime,
		TotalPoints: j.config.TotalPoints(),
	}

	j.logger.Info().
		Int("total_points", result.TotalPoints).
		Int("concurrency", j.config.Concurrency).
		Msg("starting dashboard warm job")

	points := j.config.AllPoints()

	pointsChan := make(chan CityPoint, len(points))
	resultsChan := make(chan pointResult, len(points))

	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.warmWorker(ctx, pointsChan, resultsChan)
		}()
	}

	for _, p := range points {
		pointsChan <- p
	}
	close(pointsChan)

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for pr := range resultsChan {
		if pr.err == nil {
			result.Warmed++
		} else {
			result.Failed++
			result.Errors = append(result.Errors, RefreshError{
				City:  pr.point.City,
				Point: pr.point.Point,
				Error: pr.err.Error(),
			})
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(startTime)

	j.updateMetrics(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("warmed", result.Warmed).
		Int("failed", result.Failed).
		Msg("dashboard warm job completed")

	return result
}

type pointResult struct {
	point CityPoint
	err   error
}

func (j *RefreshJob) warmWorker(ctx context.Context, points <-chan CityPoint, results chan<- pointResult) {
	for point := range points {
		select {
		case <-ctx.Done():
			return
		default:
			results <- pointResult{point: point, err: j.warmPoint(ctx, point)}
		}
	}
}

func (j *RefreshJob) warmPoint(ctx context.Context, point CityPoint) error {
	if j.dashboard == nil {
		return nil
	}

	pointCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	_, err := j.dashboard.GetDashboard(pointCtx, point.Point.Lat, point.Point.Lon)
	if err != nil {
		j.logger.Warn().
			Err(err).
			Str("city", point.City).
			Float64("lat", point.Point.Lat).
			Float64("lon", point.Point.Lon).
			Msg("failed to warm dashboard")
	}
	return err
}

func (j *RefreshJob) updateMetrics(result *RefreshResult) {
	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalRuns++
	j.metrics.WarmedPoints += int64(result.Warmed)
	j.metrics.FailedPoints += int64(result.Failed)
	j.metrics.LastRunAt = result.EndTime
	j.metrics.LastRunDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *RefreshJob) GetMetrics() RefreshMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return RefreshMetrics{
		TotalRuns:       j.metrics.TotalRuns,
		WarmedPoints:    j.metrics.WarmedPoints,
		FailedPoints:    j.metrics.FailedPoints,
		LastRunAt:       j.metrics.LastRunAt,
		LastRunDuration: j.metrics.LastRunDuration,
		TotalDuration:   j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *RefreshJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_runs":        m.TotalRuns,
		"warmed_points":     m.WarmedPoints,
		"failed_points":     m.FailedPoints,
		"last_run_at":       m.LastRunAt,
		"last_run_duration": m.LastRunDuration.String(),
		"total_duration":    m.TotalDuration.String(),
	}
}
