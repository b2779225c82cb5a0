// Package jobs provides the scheduled background tasks of the service,
// implemented as cron jobs via github.com/robfig/cron/v3.
package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// promotionExpirySchedule runs the sweep at the top of every minute.
const promotionExpirySchedule = "* * * * *"

// PromotionExpiryJob periodically deactivates promotions whose validity
// window has passed, so expired codes stop matching at checkout even if
// nobody tries to use them.
type PromotionExpiryJob struct {
	handler commands.DeactivateExpiredPromotionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPromotionExpiryJob creates the promotion expiry sweep job.
func NewPromotionExpiryJob(
	handler commands.DeactivateExpiredPromotionsCommandHandler,
	logger *slog.Logger,
) *PromotionExpiryJob {
	return &PromotionExpiryJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "promotion_expiry_job"),
	}
}

// Start schedules the sweep.
func (j *PromotionExpiryJob) Start() error {
	_, err := j.cron.AddFunc(promotionExpirySchedule, func() {
		ctx := context.Background()
		cmd := commands.NewDeactivateExpiredPromotionsCommand()

		swept, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Promotion expiry sweep failed", "error", err)
			return
		}

		if swept > 0 {
			j.logger.InfoContext(ctx, "Deactivated expired promotions", "count", swept)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *PromotionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}
