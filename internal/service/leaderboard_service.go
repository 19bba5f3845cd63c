package service

import (
	"InterVue/internal/api/config"
	"InterVue/internal/api/dto"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

type LeaderboardService interface {
	TopN(ctx context.Context, period string, n int) ([]*dto.LeaderboardEntryDTO, error)
	Refresh(ctx context.Context, period string) error
}

type leaderboardServiceImpl struct {
	tokenRepo repository.TokenRepo
	cache     Cache
	ttl       time.Duration
	now       func() time.Time
}

func NewLeaderboardService(tokenRepo repository.TokenRepo, cache Cache, cfg config.GamificationConfig) LeaderboardService {
	return &leaderboardServiceImpl{
		tokenRepo: tokenRepo,
		cache:     cache,
		ttl:       time.Duration(cfg.LeaderboardCacheSeconds) * time.Second,
		now:       time.Now,
	}
}

// TopN 空 period 视为 week，n 超出范围按 10 处理
func (s *leaderboardServiceImpl) TopN(ctx context.Context, period string, n int) ([]*dto.LeaderboardEntryDTO, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > consts.LeaderboardLimit {
		n = consts.LeaderboardLimit
	}

	key := leaderboardKey(period, n)
	if list, ok := s.fromCache(ctx, key); ok {
		return list, nil
	}
	return s.load(ctx, period, n, key)
}

// Refresh 强制重建缓存
func (s *leaderboardServiceImpl) Refresh(ctx context.Context, period string) error {
	period, err := normalizePeriod(period)
	if err != nil {
		return err
	}
	_, err = s.load(ctx, period, consts.LeaderboardLimit, leaderboardKey(period, consts.LeaderboardLimit))
	return err
}

func (s *leaderboardServiceImpl) load(ctx context.Context, period string, n int, key string) ([]*dto.LeaderboardEntryDTO, error) {
	rows, err := s.tokenRepo.GetTopTokens(ctx, s.cutoff(period), n)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.LeaderboardEntryDTO, 0, len(rows))
	for _, row := range rows {
		list = append(list, &dto.LeaderboardEntryDTO{
			UserID:    row.UserID,
			Name:      row.Name,
			Amount:    row.Amount,
			UpdatedAt: row.UpdatedAt,
		})
	}
	s.toCache(ctx, key, list)
	return list, nil
}

func (s *leaderboardServiceImpl) cutoff(period string) time.Time {
	now := s.now()
	if period == consts.LeaderboardPeriodMonth {
		return now.AddDate(0, -1, 0)
	}
	return now.Add(-7 * 24 * time.Hour)
}

func (s *leaderboardServiceImpl) fromCache(ctx context.Context, key string) ([]*dto.LeaderboardEntryDTO, bool) {
	if s.cache == nil || s.ttl <= 0 {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "leaderboard cache read failed", "key", key, "err", err)
		return nil, false
	}
	if raw == "" {
		return nil, false
	}
	list := make([]*dto.LeaderboardEntryDTO, 0)
	if err = json.Unmarshal([]byte(raw), &list); err != nil {
		log.WarnContext(ctx, "leaderboard cache decode failed", "key", key, "err", err)
		return nil, false
	}
	return list, true
}

func (s *leaderboardServiceImpl) toCache(ctx context.Context, key string, list []*dto.LeaderboardEntryDTO) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	data, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err = s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		log.WarnContext(ctx, "leaderboard cache write failed", "key", key, "err", err)
	}
}

func normalizePeriod(period string) (string, error) {
	switch period {
	case "", consts.LeaderboardPeriodWeek:
		return consts.LeaderboardPeriodWeek, nil
	case consts.LeaderboardPeriodMonth:
		return consts.LeaderboardPeriodMonth, nil
	default:
		return "", ErrInvalidPeriod
	}
}

func leaderboardKey(period string, n int) string {
	return fmt.Sprintf("%s%s:%d", consts.LeaderboardKey, period, n)
}
