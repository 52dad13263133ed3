// Package jobs provides scheduled background tasks of the order service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(logger, orphanJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrphanedOrderJob reports orders that stayed without any detail for longer
// than the grace period. It only reads; repairing an orphan is left to the
// operator.
package jobs
