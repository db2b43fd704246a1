package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// ParcelAssignmentJob manages the scheduled assignment of transporters to
// parcels. Runs every second to match pending parcels with available
// transporters.
type ParcelAssignmentJob struct {
	handler commands.AssignParcelCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewParcelAssignmentJob creates a new job for assigning parcels.
// Uses AssignParcelCommandHandler to process assignments every second.
func NewParcelAssignmentJob(handler commands.AssignParcelCommandHandler, logger *slog.Logger) *ParcelAssignmentJob {
	return &ParcelAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "parcel_assignment_job"),
	}
}

// Start begins the parcel assignment job to run every second.
func (j *ParcelAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignParcelCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoParcelFound) && !errors.Is(err, services.ErrNoEligibleTransporter) {
				j.logger.ErrorContext(ctx, "Parcel assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parcel assignment job started (running every second)")
	return nil
}

// Stop stops the parcel assignment job.
func (j *ParcelAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Parcel assignment job stopped")
}
