// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for parcel dispatch.
//
// # Available Jobs
//
// 1. ParcelAssignmentJob - Runs every second to assign pending parcels to available transporters
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(assignParcelHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job uses the cron expression "* * * * * *" which means it
// runs every second. This frequency keeps the pending queue moving as soon
// as a transporter becomes available.
//
// # Error Handling
//
// - Assignment job ignores expected business outcomes (no pending parcel,
//   no eligible transporter); the parcel simply stays pending for the next run
// - Failed job starts will stop any already running jobs
package jobs
