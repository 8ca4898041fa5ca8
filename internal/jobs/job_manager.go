package jobs

import (
	"fmt"
	"log/slog"

	"oms/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatusGaugeJob *OrderStatusGaugeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	countHandler queries.CountOrdersByStatusQueryHandler,
	ordersGauge *prometheus.GaugeVec,
	gaugeSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatusGaugeJob: NewOrderStatusGaugeJob(countHandler, ordersGauge, gaugeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusGaugeJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status gauge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatusGaugeJob.Stop()
}
