package jobs

import (
	"fmt"
	"log/slog"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementBatchJob *SettlementBatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	listUnsettledHandler queries.ListUnsettledMerchantsQueryHandler,
	createSettlementHandler commands.CreateSettlementCommandHandler,
	settlementSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		settlementBatchJob: NewSettlementBatchJob(
			listUnsettledHandler, createSettlementHandler, settlementSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.settlementBatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start settlement batch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.settlementBatchJob.Stop()
}
