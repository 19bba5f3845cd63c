package cron

import (
	"InterVue/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine             *cron.Cron
	badgeReconcileJob  *job.BadgeReconcileJob
	leaderboardWarmJob *job.LeaderboardWarmJob
}

func NewCronManager(badgeReconcileJob *job.BadgeReconcileJob, leaderboardWarmJob *job.LeaderboardWarmJob) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		badgeReconcileJob:  badgeReconcileJob,
		leaderboardWarmJob: leaderboardWarmJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.badgeReconcileJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@every 5m", s.leaderboardWarmJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron engine stopping")
	<-s.engine.Stop().Done()
}
