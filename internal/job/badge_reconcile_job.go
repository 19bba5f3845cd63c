package job

import (
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/logger"
	"InterVue/internal/repository"
	"InterVue/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	reconcilePageSize = 200
	reconcileLockTTL  = 30 * time.Minute
)

// BadgeReconcileJob 按 user_id 分页重新评估所有有余额的用户
type BadgeReconcileJob struct {
	tokenRepo repository.TokenRepo
	badgeSvc  service.BadgeService
	locker    Locker
}

func NewBadgeReconcileJob(tokenRepo repository.TokenRepo, badgeSvc service.BadgeService, locker Locker) *BadgeReconcileJob {
	return &BadgeReconcileJob{
		tokenRepo: tokenRepo,
		badgeSvc:  badgeSvc,
		locker:    locker,
	}
}

func (s *BadgeReconcileJob) Run() {
	ctx := logger.NewTraceContext(context.Background(), "job")
	owner := uuid.NewString()

	ok, err := s.locker.Lock(ctx, consts.BadgeReconcileLock, owner, reconcileLockTTL)
	if err != nil {
		log.ErrorContext(ctx, "badge reconcile lock error", "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "badge reconcile running elsewhere, skip")
		return
	}
	defer s.locker.Unlock(ctx, consts.BadgeReconcileLock, owner)

	users, granted := s.reconcile(ctx)
	log.InfoContext(ctx, "badge reconcile finished", "users", users, "granted", granted)
}

func (s *BadgeReconcileJob) reconcile(ctx context.Context) (int, int) {
	users, granted := 0, 0
	after := ""
	for {
		ids, err := s.tokenRepo.GetUserIDsAfter(ctx, after, reconcilePageSize)
		if err != nil {
			log.ErrorContext(ctx, "list users for reconcile failed", "after", after, "err", err)
			return users, granted
		}
		for _, id := range ids {
			list, err := s.badgeSvc.EvaluateUser(ctx, id)
			if err != nil {
				log.WarnContext(ctx, "reconcile user badges failed", "user_id", id, "err", err)
			}
			users++
			granted += len(list)
		}
		if len(ids) < reconcilePageSize {
			return users, granted
		}
		after = ids[len(ids)-1]
	}
}
