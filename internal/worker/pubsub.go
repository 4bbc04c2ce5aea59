package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"
)

// Job types carried in the job_type field of scheduler messages.
const (
	JobDashboardRefresh = "dashboard_refresh"
	JobHealthCheck      = "health_check"
)

// RefreshMessage is the payload Cloud Scheduler publishes to trigger
// worker jobs.
type RefreshMessage struct {
	JobType string `json:"job_type"`

	// Cities narrows a dashboard_refresh to the named targets. Empty
	// means all configured cities.
	Cities []string `json:"cities,omitempty"`
}

// PubSubConfig holds configuration for the Pub/Sub handler.
type PubSubConfig struct {
	ProjectID        string
	SubscriptionName string
	RefreshJob       *RefreshJob
	Logger           zerolog.Logger

	// MaxOutstanding caps how many messages are handled concurrently
	// (default: 10). Warm jobs are heavy, so this stays low.
	MaxOutstanding int
}

// PubSubHandler consumes scheduler messages and dispatches warm and
// health check jobs.
type PubSubHandler struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	refreshJob       *RefreshJob
	logger           zerolog.Logger
}

// NewPubSubHandler connects to Pub/Sub and prepares a subscriber for the
// configured subscription.
func NewPubSubHandler(ctx context.Context, cfg PubSubConfig) (*PubSubHandler, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	maxOutstanding := cfg.MaxOutstanding
	if maxOutstanding <= 0 {
		maxOutstanding = 10
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)
	subscriber.ReceiveSettings.MaxOutstandingMessages = maxOutstanding
	// Warm jobs can outlive the default ack deadline.
	subscriber.ReceiveSettings.MaxExtension = 10 * time.Minute

	return &PubSubHandler{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		refreshJob:       cfg.RefreshJob,
		logger:           cfg.Logger,
	}, nil
}

// Start blocks receiving messages until ctx is canceled.
func (h *PubSubHandler) Start(ctx context.Context) error {
	h.logger.Info().
		Str("subscription", h.subscriptionName).
		Msg("starting pubsub handler")

	return h.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		h.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (h *PubSubHandler) Close() error {
	return h.client.Close()
}

func (h *PubSubHandler) handleMessage(ctx context.Context, msg *pubsub.Message) {
	start := time.Now()
	logger := h.logger.With().Str("message_id", msg.ID).Logger()

	var job RefreshMessage
	if err := json.Unmarshal(msg.Data, &job); err != nil {
		// A payload that never parses would redeliver forever, so ack
		// and drop it instead of nacking.
		logger.Error().Err(err).Msg("dropping malformed job message")
		msg.Ack()
		return
	}

	var err error
	switch job.JobType {
	case JobDashboardRefresh:
		err = h.warmDashboards(ctx, job)
	case JobHealthCheck:
		err = h.verifyUpstreams(ctx)
	default:
		logger.Warn().Str("job_type", job.JobType).Msg("dropping unknown job type")
		msg.Ack()
		return
	}

	if err != nil {
		logger.Error().Err(err).Str("job_type", job.JobType).Msg("job failed")
		msg.Nack()
		return
	}

	logger.Info().
		Str("job_type", job.JobType).
		Dur("duration", time.Since(start)).
		Msg("job completed")
	msg.Ack()
}

// jobFor returns the configured warm job, narrowed to msg.Cities when the
// message names specific targets.
func (h *PubSubHandler) jobFor(msg RefreshMessage) *RefreshJob {
	if len(msg.Cities) == 0 {
		return h.refreshJob
	}
	return NewRefreshJob(RefreshJobConfig{
		Config:    h.refreshJob.config.FilterCities(msg.Cities),
		Logger:    h.logger,
		Dashboard: h.refreshJob.dashboard,
	})
}

func (h *PubSubHandler) warmDashboards(ctx context.Context, msg RefreshMessage) error {
	h.logger.Info().
		Strs("cities", msg.Cities).
		Msg("starting dashboard warm")

	result := h.jobFor(msg).Run(ctx)

	h.logger.Info().
		Dur("duration", result.Duration).
		Int("warmed", result.Warmed).
		Int("failed", result.Failed).
		Int("total_points", result.TotalPoints).
		Msg("dashboard warm completed")

	// Partial failures stay acked so a single flaky upstream does not
	// redeliver the whole job. Only a mostly failed run is retried.
	if result.Failed > result.Warmed {
		return fmt.Errorf("too many warm failures: %d/%d", result.Failed, result.TotalPoints)
	}
	return nil
}

// verifyUpstreams warms a single well known point to prove the provider
// path end to end.
func (h *PubSubHandler) verifyUpstreams(ctx context.Context) error {
	probe := NewRefreshJob(RefreshJobConfig{
		Config: RefreshConfig{
			Targets: []RefreshTarget{
				{
					City:     "health-check",
					Priority: 1,
					Points:   []Point{{Lat: 19.4326, Lon: -99.1332}}, // Mexico City
				},
			},
			Concurrency: 1,
			Timeout:     10 * time.Second,
		},
		Logger:    h.logger,
		Dashboard: h.refreshJob.dashboard,
	})

	if result := probe.Run(ctx); result.Failed > 0 {
		return fmt.Errorf("health check failed: %d errors", result.Failed)
	}

	h.logger.Debug().Msg("health check passed")
	return nil
}
