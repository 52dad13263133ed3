package jobs

import (
	"context"
	"time"

	"ordersvc/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultOrphanSchedule    = "@every 10m"
	DefaultOrphanGracePeriod = time.Hour
)

// OrphanFinder is satisfied by queries.FindOrphanedOrdersQueryHandler.
type OrphanFinder interface {
	Handle(ctx context.Context, query queries.FindOrphanedOrdersQuery) ([]queries.OrderResponse, error)
}

// OrphanedOrderJob logs orders of every tenant that have no detail and were
// created more than gracePeriod ago.
type OrphanedOrderJob struct {
	finder      OrphanFinder
	schedule    string
	gracePeriod time.Duration
	now         func() time.Time

	cron   *cron.Cron
	logger *zap.Logger
}

// NewOrphanedOrderJob creates the sweep. An empty schedule or a non-positive
// grace period falls back to the defaults.
func NewOrphanedOrderJob(
	finder OrphanFinder, schedule string, gracePeriod time.Duration, logger *zap.Logger,
) *OrphanedOrderJob {
	if schedule == "" {
		schedule = DefaultOrphanSchedule
	}
	if gracePeriod <= 0 {
		gracePeriod = DefaultOrphanGracePeriod
	}
	return &OrphanedOrderJob{
		finder:      finder,
		schedule:    schedule,
		gracePeriod: gracePeriod,
		now:         time.Now,
		cron:        cron.New(),
		logger:      logger.With(zap.String("component", "orphaned_order_job")),
	}
}

// Name returns the job name used in logs.
func (j *OrphanedOrderJob) Name() string {
	return "orphaned_order_job"
}

// Sweep walks every page of orphaned orders older than the grace period.
func (j *OrphanedOrderJob) Sweep(ctx context.Context) ([]queries.OrderResponse, error) {
	cutoff := j.now().Add(-j.gracePeriod)

	var found []queries.OrderResponse
	for offset := 0; ; offset += queries.MaxLimit {
		page, err := queries.NewPage(queries.MaxLimit, offset)
		if err != nil {
			return nil, err
		}
		query, err := queries.NewFindAllOrphanedOrdersQuery(cutoff, page)
		if err != nil {
			return nil, err
		}

		batch, err := j.finder.Handle(ctx, query)
		if err != nil {
			return nil, err
		}
		found = append(found, batch...)
		if len(batch) < queries.MaxLimit {
			return found, nil
		}
	}
}

func (j *OrphanedOrderJob) run() {
	ctx := context.Background()

	orphans, err := j.Sweep(ctx)
	if err != nil {
		j.logger.Error("Orphaned order sweep failed", zap.Error(err))
		return
	}
	if len(orphans) == 0 {
		j.logger.Debug("No orphaned orders")
		return
	}

	ids := make([]int64, len(orphans))
	for i, o := range orphans {
		ids[i] = o.OrderID
	}
	j.logger.Warn("Orphaned orders found",
		zap.Int("count", len(orphans)),
		zap.Int64s("order_ids", ids),
		zap.Duration("grace_period", j.gracePeriod))
}

// Start registers the sweep with cron and starts the scheduler.
func (j *OrphanedOrderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Orphaned order job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running sweep to finish.
func (j *OrphanedOrderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Orphaned order job stopped")
}
