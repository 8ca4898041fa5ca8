package jobs

import (
	"context"
	"log/slog"
	"time"

	"oms/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// DefaultGaugeSchedule refreshes the order gauges twice a minute.
const DefaultGaugeSchedule = "@every 30s"

// gaugeRunTimeout bounds one refresh so a hung store cannot pile up runs.
const gaugeRunTimeout = 10 * time.Second

// OrderStatusGaugeJob periodically publishes the number of orders per status
// on a labelled gauge, e.g. oms_orders{status="Pending"}.
type OrderStatusGaugeJob struct {
	handler  queries.CountOrdersByStatusQueryHandler
	gauge    *prometheus.GaugeVec
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusGaugeJob creates the job. An empty schedule means
// DefaultGaugeSchedule. Schedules use the seconds-enabled cron syntax or a
// descriptor such as "@every 1m".
func NewOrderStatusGaugeJob(
	handler queries.CountOrdersByStatusQueryHandler,
	gauge *prometheus.GaugeVec,
	schedule string,
	logger *slog.Logger,
) *OrderStatusGaugeJob {
	if schedule == "" {
		schedule = DefaultGaugeSchedule
	}
	return &OrderStatusGaugeJob{
		handler:  handler,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With("component", "order_status_gauge_job"),
	}
}

// RunOnce refreshes every gauge from a single set of counts. On error the
// previous values are left in place.
func (j *OrderStatusGaugeJob) RunOnce(ctx context.Context) error {
	counts, err := j.handler.Handle(ctx)
	if err != nil {
		return err
	}

	for status, n := range counts {
		j.gauge.WithLabelValues(status.String()).Set(float64(n))
	}
	return nil
}

// Start runs the job once immediately, then on its schedule.
func (j *OrderStatusGaugeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status gauge job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *OrderStatusGaugeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status gauge job stopped")
}

func (j *OrderStatusGaugeJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), gaugeRunTimeout)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Order status gauge job failed", "error", err)
	}
}
