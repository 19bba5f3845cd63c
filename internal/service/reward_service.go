package service

import (
	"InterVue/internal/api/config"
	"InterVue/internal/api/dto"
	"InterVue/internal/model"
	"InterVue/internal/pkg/consts"
	"InterVue/internal/pkg/kafka"
	"InterVue/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"strings"
	"time"
)

var rewardTypes = map[string]bool{
	model.RewardTypeInterviewFeedback: true,
	model.RewardTypeQuizCompletion:    true,
}

type RewardService interface {
	Trigger(ctx context.Context, userID string, sourceID string, rewardType string) (*dto.RewardResultDTO, error)
}

type rewardServiceImpl struct {
	rewardRepo   repository.RewardRepo
	tokenRepo    repository.TokenRepo
	streakRepo   repository.StreakRepo
	badgeService BadgeService
	publisher    EventPublisher
	amount       int64
	policy       string
	now          func() time.Time
}

func NewRewardService(
	rewardRepo repository.RewardRepo,
	tokenRepo repository.TokenRepo,
	streakRepo repository.StreakRepo,
	badgeService BadgeService,
	publisher EventPublisher,
	cfg config.GamificationConfig,
) RewardService {
	amount := cfg.RewardAmount
	if amount <= 0 {
		amount = 10
	}
	return &rewardServiceImpl{
		rewardRepo:   rewardRepo,
		tokenRepo:    tokenRepo,
		streakRepo:   streakRepo,
		badgeService: badgeService,
		publisher:    publisher,
		amount:       amount,
		policy:       cfg.StreakPolicy,
		now:          time.Now,
	}
}

// Trigger 依次执行 发放代币 → 记录连续天数 → 评估徽章
// 每一步独立提交，失败只记录并跳过，同一事件重试时只补做未完成的步骤
func (s *rewardServiceImpl) Trigger(ctx context.Context, userID string, sourceID string, rewardType string) (*dto.RewardResultDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	if strings.TrimSpace(sourceID) == "" {
		return nil, ErrMissingSourceID
	}
	if !rewardTypes[rewardType] {
		return nil, ErrInvalidRewardType
	}

	event, err := s.rewardRepo.ClaimEvent(ctx, &model.RewardEvent{
		UserID:     userID,
		SourceID:   sourceID,
		RewardType: rewardType,
		Amount:     s.amount,
	})
	if err != nil {
		return nil, err
	}

	result := &dto.RewardResultDTO{
		Replayed: event.TokensApplied && event.StreakApplied && event.BadgesEvaluated,
		Badges:   make([]*dto.UserBadgeDTO, 0),
	}
	var stepErrs []error

	if err = s.applyTokens(ctx, event, result); err != nil {
		stepErrs = append(stepErrs, fmt.Errorf("tokens: %w", err))
	}
	if err = s.applyStreak(ctx, event, result); err != nil {
		stepErrs = append(stepErrs, fmt.Errorf("streak: %w", err))
	}
	if err = s.evaluateBadges(ctx, event, result); err != nil {
		stepErrs = append(stepErrs, fmt.Errorf("badges: %w", err))
	}

	result.Complete = len(stepErrs) == 0
	if !result.Complete {
		log.ErrorContext(ctx, "reward trigger incomplete",
			"user_id", userID, "source_id", sourceID, "reward_type", rewardType,
			"err", errors.Join(stepErrs...))
	}
	return result, nil
}

func (s *rewardServiceImpl) applyTokens(ctx context.Context, event *model.RewardEvent, result *dto.RewardResultDTO) error {
	if event.TokensApplied {
		token, err := s.tokenRepo.GetToken(ctx, event.UserID)
		if err != nil {
			return err
		}
		if token != nil {
			result.Amount = token.Amount
		}
		return nil
	}

	total, applied, err := s.rewardRepo.ApplyTokens(ctx, event.ID, event.UserID, event.Amount)
	if err != nil {
		return err
	}
	result.Amount = total
	if applied && s.publisher != nil {
		msg := &kafka.RewardMessage{
			Type:       consts.NotificationTypeTokens,
			UserID:     event.UserID,
			SourceID:   event.SourceID,
			RewardType: event.RewardType,
			Amount:     event.Amount,
			Total:      total,
			OccurredAt: s.now(),
		}
		if err = s.publisher.Publish(ctx, msg); err != nil {
			log.WarnContext(ctx, "publish token event failed", "user_id", event.UserID, "err", err)
		}
	}
	return nil
}

func (s *rewardServiceImpl) applyStreak(ctx context.Context, event *model.RewardEvent, result *dto.RewardResultDTO) error {
	current, err := s.streakRepo.GetStreak(ctx, event.UserID)
	if err != nil {
		return err
	}
	if current != nil {
		result.Streak = current.Count
	}
	if event.StreakApplied {
		return nil
	}

	now := s.now()
	var last *time.Time
	if current != nil {
		last = current.LastDate
	}
	increment, skip := streakDecision(s.policy, last, now)
	if skip {
		return s.rewardRepo.MarkStep(ctx, event.ID, repository.RewardStepStreak)
	}

	streak, _, err := s.rewardRepo.ApplyStreak(ctx, event.ID, event.UserID, now, increment)
	if err != nil {
		return err
	}
	if streak != nil {
		result.Streak = streak.Count
	}
	return nil
}

// evaluateBadges 徽章发放本身幂等，已完成的事件也会重新确认一次
func (s *rewardServiceImpl) evaluateBadges(ctx context.Context, event *model.RewardEvent, result *dto.RewardResultDTO) error {
	granted, err := s.badgeService.EvaluateUser(ctx, event.UserID)
	result.Badges = append(result.Badges, granted...)
	if err != nil {
		return err
	}
	if event.BadgesEvaluated {
		return nil
	}
	return s.rewardRepo.MarkStep(ctx, event.ID, repository.RewardStepBadges)
}
