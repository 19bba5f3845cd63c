package job

import (
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/logger"
	"InterVue/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const warmLockTTL = time.Minute

// LeaderboardWarmJob 定期重建周榜和月榜缓存
type LeaderboardWarmJob struct {
	leaderboardSvc service.LeaderboardService
	locker         Locker
}

func NewLeaderboardWarmJob(leaderboardSvc service.LeaderboardService, locker Locker) *LeaderboardWarmJob {
	return &LeaderboardWarmJob{
		leaderboardSvc: leaderboardSvc,
		locker:         locker,
	}
}

func (s *LeaderboardWarmJob) Run() {
	ctx := logger.NewTraceContext(context.Background(), "job")
	owner := uuid.NewString()

	ok, err := s.locker.Lock(ctx, consts.LeaderboardWarmLock, owner, warmLockTTL)
	if err != nil || !ok {
		return
	}
	defer s.locker.Unlock(ctx, consts.LeaderboardWarmLock, owner)

	for _, period := range []string{consts.LeaderboardPeriodWeek, consts.LeaderboardPeriodMonth} {
		if err = s.leaderboardSvc.Refresh(ctx, period); err != nil {
			log.ErrorContext(ctx, "warm leaderboard failed", "period", period, "err", err)
		}
	}
}
