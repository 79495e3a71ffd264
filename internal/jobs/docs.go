// Package jobs runs the periodic tasks of the dispatch service on
// github.com/robfig/cron/v3.
//
// RankReportJob logs the top drivers by total distance driven. Schedules are
// cron expressions with a leading seconds field; the report runs every five
// minutes unless RANK_REPORT_SCHEDULE says otherwise.
//
//	manager := jobs.NewJobManager(rankHandler, "0 */5 * * * *", 3, logger)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// A failed run is logged and the next one proceeds as scheduled.
package jobs
