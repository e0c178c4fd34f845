package jobs

import (
	"fmt"
	"log/slog"

	"wroom/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	verificationCleanupJob *VerificationCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeTokensHandler commands.PurgeVerificationTokensCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		verificationCleanupJob: NewVerificationCleanupJob(purgeTokensHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.verificationCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start verification cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.verificationCleanupJob.Stop()
}
