package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager owns the scheduled jobs of the service.
type JobManager struct {
	rankReportJob *RankReportJob
}

func NewJobManager(
	reporter RankReporter,
	rankReportSchedule string,
	rankReportTop int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		rankReportJob: NewRankReportJob(reporter, rankReportSchedule, rankReportTop, logger),
	}
}

// StartAll schedules every job. An invalid schedule is returned as an error.
func (jm *JobManager) StartAll() error {
	if err := jm.rankReportJob.Start(); err != nil {
		return fmt.Errorf("start rank report job: %w", err)
	}
	return nil
}

// StopAll stops the jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.rankReportJob.Stop()
}
