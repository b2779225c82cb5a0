package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	promotionExpiryJob *PromotionExpiryJob
}

// NewJobManager creates a job manager wired to the given handlers.
func NewJobManager(
	deactivateExpiredPromotionsHandler commands.DeactivateExpiredPromotionsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		promotionExpiryJob: NewPromotionExpiryJob(deactivateExpiredPromotionsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.promotionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start promotion expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.promotionExpiryJob.Stop()
}
