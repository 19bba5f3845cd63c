package service

import (
	"InterVue/internal/api/config"
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/repository"
	"context"
	"strings"
	"time"
)

type StreakService interface {
	RecordActivity(ctx context.Context, userID string, date time.Time, increment bool) (*dto.StreakDTO, error)
	GetStreak(ctx context.Context, userID string) (*dto.StreakDTO, error)
}

type streakServiceImpl struct {
	streakRepo repository.StreakRepo
}

func NewStreakService(streakRepo repository.StreakRepo) StreakService {
	return &streakServiceImpl{streakRepo: streakRepo}
}

// RecordActivity 首次创建为 1，之后按调用方的 increment 决定加一或清零
func (s *streakServiceImpl) RecordActivity(ctx context.Context, userID string, date time.Time, increment bool) (*dto.StreakDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	streak, err := s.streakRepo.RecordActivity(ctx, userID, date, increment)
	if err != nil {
		return nil, err
	}
	return toStreakDTO(streak), nil
}

func (s *streakServiceImpl) GetStreak(ctx context.Context, userID string) (*dto.StreakDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	streak, err := s.streakRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toStreakDTO(streak), nil
}

func toStreakDTO(streak *model.Streak) *dto.StreakDTO {
	if streak == nil {
		return &dto.StreakDTO{Count: 0}
	}
	return &dto.StreakDTO{Count: streak.Count, LastDate: streak.LastDate}
}

// streakDecision 奖励触发时的连续判定
// trust 策略总是加一；calendar 策略同一天不更新，隔一天加一，否则清零
func streakDecision(policy string, last *time.Time, now time.Time) (increment bool, skip bool) {
	if policy != config.StreakPolicyCalendar || last == nil {
		return true, false
	}
	gap := daysBetween(*last, now)
	switch {
	case gap <= 0:
		return false, true
	case gap == 1:
		return true, false
	default:
		return false, false
	}
}

// daysBetween 按 UTC 日历日计算间隔
func daysBetween(from, to time.Time) int {
	y1, m1, d1 := from.UTC().Date()
	y2, m2, d2 := to.UTC().Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
