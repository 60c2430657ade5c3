// Package jobs runs recurring background tasks for the visa desk backend on
// top of github.com/robfig/cron/v3.
//
// # Available Jobs
//
// StatusReconciliationJob runs daily at 01:01 ("1 1 * * *") in the
// configured location. It loads every Complete order, and for each one whose
// travel date is strictly before the current time it sets every application
// to Past and then the order itself. Writes are not transactional and failed
// runs are not retried; the next run converges.
//
// # Usage
//
//	job := jobs.NewStatusReconciliationJob(handler, clock.NewSystem(loc), "", recorder, logger)
//	manager := jobs.NewJobManager(loc, supervisor, logger, job)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// Failures of scheduled runs go to the Reporter (the alert supervisor).
// Overlapping runs are skipped with ErrJobAlreadyRunning and are not
// reported. Manual runs through RunNow return their error to the caller.
package jobs
