package cron

import (
	"fmt"
	log "log/slog"
	"strings"

	"github.com/robfig/cron/v3"
)

// InitCron 注册并启动定时任务
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return err
	}
	mgr.Start()

	entries := mgr.engine.Entries()
	for _, e := range entries {
		log.Info("Cron job scheduled", "id", e.ID, "job", jobName(e.Job), "next", e.Next)
	}
	log.Info("Cron Jobs started", "count", len(entries))
	return nil
}

// jobName 取类型名，例如 BadgeReconcileJob
func jobName(j cron.Job) string {
	name := fmt.Sprintf("%T", j)
	return name[strings.LastIndex(name, ".")+1:]
}
