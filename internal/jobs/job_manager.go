package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryConfirmationJob *DeliveryConfirmationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	orders ports.OrderRepository,
	confirmationWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryConfirmationJob: NewDeliveryConfirmationJob(
			confirmDeliveryHandler, orders, confirmationWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryConfirmationJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery confirmation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryConfirmationJob.Stop()
}
