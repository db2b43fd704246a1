package jobs

import (
	"fmt"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	parcelAssignmentJob *ParcelAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignParcelHandler commands.AssignParcelCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		parcelAssignmentJob: NewParcelAssignmentJob(assignParcelHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.parcelAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start parcel assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.parcelAssignmentJob.Stop()
}
