package jobs

import (
	"context"
	"log/slog"

	"wroom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// VerificationCleanupJob removes expired email verification tokens on a
// schedule. Runs every ten minutes; expired tokens are harmless in the
// meantime because verification checks the expiry too.
type VerificationCleanupJob struct {
	handler commands.PurgeVerificationTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewVerificationCleanupJob creates a new job for verification token cleanup.
// Uses PurgeVerificationTokensCommandHandler to clear expired tokens.
func NewVerificationCleanupJob(
	handler commands.PurgeVerificationTokensCommandHandler,
	logger *slog.Logger,
) *VerificationCleanupJob {
	return &VerificationCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "verification_cleanup_job"),
	}
}

// Start begins the cleanup job to run every ten minutes.
func (j *VerificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPurgeVerificationTokensCommand()

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Verification cleanup job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Expired verification tokens purged", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Verification cleanup job started (running every ten minutes)")
	return nil
}

// Stop stops the cleanup job.
func (j *VerificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Verification cleanup job stopped")
}
