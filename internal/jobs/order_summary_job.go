package jobs

import (
	"context"
	"log/slog"

	"workorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrderSummaryJob periodically logs aggregate order counts for operational
// visibility. Read-only; it never mutates orders or the audit trail.
type OrderSummaryJob struct {
	handler queries.GetOrderSummaryQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSummaryJob creates a job that reports order counts once a minute.
func NewOrderSummaryJob(handler queries.GetOrderSummaryQueryHandler, logger *slog.Logger) *OrderSummaryJob {
	return &OrderSummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_summary_job"),
	}
}

// Start begins the summary job on its once-a-minute schedule.
func (j *OrderSummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		summary, err := j.handler.Handle(ctx, queries.NewGetOrderSummaryQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order summary job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Order summary",
			"total", summary.Total,
			"in_progress", summary.InProgress,
			"needs_rework", summary.NeedsRework,
			"completed", summary.Completed,
			"unassigned", summary.Unassigned,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order summary job started (running every minute)")
	return nil
}

// Stop stops the summary job.
func (j *OrderSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order summary job stopped")
}
