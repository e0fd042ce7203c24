package services

import (
	"encoding/json"
	"time"

	"uxmetrics/internal/aggregate"
	"uxmetrics/internal/config"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"
	"uxmetrics/internal/telemetry"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Scheduler writes one automated report snapshot per day at the configured
// UTC time, so longitudinal dashboards have a stored trail of summaries
// without a researcher exporting them by hand. Summaries are still always
// recomputed on demand; snapshots are just persisted exports.
type Scheduler struct {
	log     *zap.Logger
	study   *models.Study
	lastRun string // yyyy-mm-dd of the last snapshot
}

func NewScheduler(log *zap.Logger, study *models.Study) *Scheduler {
	return &Scheduler{
		log:   log,
		study: study,
	}
}

// Start runs the scheduler in a goroutine.
func (s *Scheduler) Start() {
	s.log.Info("Starting snapshot scheduler...")
	go func() {
		// Ticker will fire on every minute.
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			<-ticker.C
			s.runSnapshotCheck()
		}
	}()
}

func (s *Scheduler) runSnapshotCheck() {
	if !config.Conf.Snapshot.Enabled {
		return
	}

	now := time.Now().UTC()
	if now.Format("15:04") != config.Conf.Snapshot.Time {
		return
	}
	today := now.Format("2006-01-02")
	if s.lastRun == today {
		return
	}

	s.lastRun = today
	s.writeSnapshot(now)
}

func (s *Scheduler) writeSnapshot(now time.Time) {
	observations, err := repository.ListObservations(s.study.ID, aggregate.Filter{})
	if err != nil {
		s.log.Error("Failed to load observations for snapshot", zap.Error(err))
		return
	}

	summaries, err := json.Marshal(aggregate.SummarizeAll(observations, aggregate.Filter{}))
	if err != nil {
		s.log.Error("Failed to encode snapshot summaries", zap.Error(err))
		return
	}

	report := &models.Report{
		StudyID:    s.study.ID,
		Source:     models.ReportSourceSnapshot,
		TaskIDs:    pq.StringArray(s.study.TaskIDs()),
		Summaries:  summaries,
		Commentary: "Automated daily snapshot",
		CreatedAt:  now,
	}
	if err := repository.SaveReport(report); err != nil {
		s.log.Error("Failed to save snapshot report", zap.Error(err))
		return
	}

	telemetry.RecordSnapshotWritten()
	s.log.Info("Snapshot report written",
		zap.String("studyID", s.study.ID),
		zap.Int("observations", len(observations)),
	)
}
