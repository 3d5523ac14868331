package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// SettlementBatchJob opens settlement batches for every merchant holding
// collected COD cash. Runs nightly; the schedule is configurable per
// deployment.
type SettlementBatchJob struct {
	listHandler   queries.ListUnsettledMerchantsQueryHandler
	createHandler commands.CreateSettlementCommandHandler
	schedule      string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewSettlementBatchJob creates a job that batches unsettled COD records
// into settlements on the given cron schedule (six-field, with seconds).
func NewSettlementBatchJob(
	listHandler queries.ListUnsettledMerchantsQueryHandler,
	createHandler commands.CreateSettlementCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SettlementBatchJob {
	return &SettlementBatchJob{
		listHandler:   listHandler,
		createHandler: createHandler,
		schedule:      schedule,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "settlement_batch_job"),
	}
}

// Start schedules the batch run.
func (j *SettlementBatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement batch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the settlement batch job.
func (j *SettlementBatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Settlement batch job stopped")
}

// run batches each merchant independently so one failure does not block the
// rest of the nightly run.
func (j *SettlementBatchJob) run() {
	ctx := context.Background()

	merchants, err := j.listHandler.Handle(ctx, queries.NewListUnsettledMerchantsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Settlement batch run failed to list merchants", "error", err)
		return
	}

	var created, skipped int
	for _, merchant := range merchants {
		cmd, cmdErr := commands.NewCreateSettlementCommand(
			kernel.NewUUID(), merchant.TenantID, merchant.MerchantID, "nightly settlement batch")
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Settlement batch command rejected",
				"merchant_id", merchant.MerchantID.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.createHandler.Handle(ctx, cmd); handleErr != nil {
			// A merchant whose previous batch is still awaiting payout
			// keeps accumulating records until the next run.
			if errors.Is(handleErr, errs.ErrConflict) {
				skipped++
				continue
			}
			j.logger.ErrorContext(ctx, "Settlement batch failed for merchant",
				"merchant_id", merchant.MerchantID.String(), "error", handleErr)
			continue
		}
		created++
	}

	j.logger.InfoContext(ctx, "Settlement batch run finished",
		"merchants", len(merchants), "created", created, "skipped_pending", skipped)
}
