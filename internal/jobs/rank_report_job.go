package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const (
	DefaultRankReportSchedule = "0 */5 * * * *"
	DefaultRankReportTop      = 3

	rankReportTimeout = 30 * time.Second
)

// RankReporter builds the driver ranking.
type RankReporter interface {
	Handle(ctx context.Context, query queries.GetDriverRankReportQuery) ([]queries.DriverRankLine, error)
}

// RankReportJob periodically logs the drivers with the longest total distance.
type RankReportJob struct {
	reporter RankReporter
	schedule string
	top      int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRankReportJob creates the job. An empty schedule or a non-positive top
// fall back to the defaults.
func NewRankReportJob(reporter RankReporter, schedule string, top int, logger *slog.Logger) *RankReportJob {
	if schedule == "" {
		schedule = DefaultRankReportSchedule
	}
	if top <= 0 {
		top = DefaultRankReportTop
	}

	return &RankReportJob{
		reporter: reporter,
		schedule: schedule,
		top:      top,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "rank_report_job"),
	}
}

// Start schedules the report. The schedule uses six fields, seconds first.
func (j *RankReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), rankReportTimeout)
		defer cancel()

		j.run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rank report job started", "schedule", j.schedule, "top", j.top)
	return nil
}

// Stop waits for a running report to finish.
func (j *RankReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rank report job stopped")
}

func (j *RankReportJob) run(ctx context.Context) {
	report, err := j.reporter.Handle(ctx, queries.NewGetDriverRankReportQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Rank report job failed", "error", err)
		return
	}

	if len(report) > j.top {
		report = report[:j.top]
	}

	for i, line := range report {
		j.logger.InfoContext(ctx, "Driver rank",
			"rank", i+1,
			"driver_id", line.DriverID.String(),
			"driver", line.DriverName,
			"total_distance_km", line.TotalDistance,
		)
	}
}
