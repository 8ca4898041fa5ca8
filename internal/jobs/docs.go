// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderStatusGaugeJob counts orders per status and publishes the result on
// the oms_orders gauge, so dashboards can follow the lifecycle without
// querying the database.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(countHandler, metrics.Orders, "@every 30s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept six-field cron expressions (with seconds) and descriptors
// like "@every 1m". A run still in progress when the next one is due is
// skipped.
//
// # Error Handling
//
// Failed refreshes are logged; the gauges keep their last published values.
// An unparsable schedule makes StartAll fail.
package jobs
