package service

import (
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

// BadgeContext 徽章规则的输入
type BadgeContext struct {
	Tokens         int64
	Streak         int
	InterviewCount int64
}

type badgeRule struct {
	badgeID   string
	satisfied func(BadgeContext) bool
}

// badgeRules 各规则相互独立，每次都全部判定
var badgeRules = []badgeRule{
	{model.BadgeFirstInterview, func(c BadgeContext) bool { return c.InterviewCount == 1 && c.Tokens >= 10 }},
	{model.Badge10Tokens, func(c BadgeContext) bool { return c.Tokens >= 10 }},
	{model.Badge50Tokens, func(c BadgeContext) bool { return c.Tokens >= 50 }},
	{model.Badge7DayStreak, func(c BadgeContext) bool { return c.Streak >= 7 }},
}

type BadgeService interface {
	EvaluateAndAward(ctx context.Context, userID string, bc BadgeContext) ([]*dto.UserBadgeDTO, error)
	EvaluateUser(ctx context.Context, userID string) ([]*dto.UserBadgeDTO, error)
	Grant(ctx context.Context, userID string, badgeID string) (*dto.BadgeGrantResultDTO, error)
	ListUserBadges(ctx context.Context, userID string) ([]*dto.UserBadgeDTO, error)
	ListCatalog(ctx context.Context) ([]*dto.BadgeDTO, error)
}

type badgeServiceImpl struct {
	badgeRepo     repository.BadgeRepo
	tokenRepo     repository.TokenRepo
	streakRepo    repository.StreakRepo
	interviewRepo repository.InterviewRepo
	publisher     EventPublisher
}

func NewBadgeService(
	badgeRepo repository.BadgeRepo,
	tokenRepo repository.TokenRepo,
	streakRepo repository.StreakRepo,
	interviewRepo repository.InterviewRepo,
	publisher EventPublisher,
) BadgeService {
	return &badgeServiceImpl{
		badgeRepo:     badgeRepo,
		tokenRepo:     tokenRepo,
		streakRepo:    streakRepo,
		interviewRepo: interviewRepo,
		publisher:     publisher,
	}
}

// EvaluateAndAward 返回本次新发放的徽章，单个徽章失败不影响其他规则
func (s *badgeServiceImpl) EvaluateAndAward(ctx context.Context, userID string, bc BadgeContext) ([]*dto.UserBadgeDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}

	owned := make(map[string]bool)
	ids, err := s.badgeRepo.GetUserBadgeIDs(ctx, userID)
	if err != nil {
		// 读取失败时不做短路，所有命中的规则都尝试发放
		log.WarnContext(ctx, "load owned badges failed", "user_id", userID, "err", err)
	}
	for _, id := range ids {
		owned[id] = true
	}

	granted := make([]*dto.UserBadgeDTO, 0)
	var errs []error
	for _, rule := range badgeRules {
		if owned[rule.badgeID] || !rule.satisfied(bc) {
			continue
		}
		ub, created, err := s.badgeRepo.GrantBadge(ctx, userID, rule.badgeID)
		if err != nil {
			log.ErrorContext(ctx, "grant badge failed", "user_id", userID, "badge_id", rule.badgeID, "err", err)
			errs = append(errs, fmt.Errorf("grant %s: %w", rule.badgeID, err))
			continue
		}
		if created {
			granted = append(granted, toUserBadgeDTO(ub))
		}
	}

	s.publishBadges(ctx, userID, granted)
	return granted, errors.Join(errs...)
}

// EvaluateUser 读取最新的余额、连续天数与面试数后评估
func (s *badgeServiceImpl) EvaluateUser(ctx context.Context, userID string) ([]*dto.UserBadgeDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	bc := BadgeContext{}

	token, err := s.tokenRepo.GetToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	if token != nil {
		bc.Tokens = token.Amount
	}

	streak, err := s.streakRepo.GetStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	if streak != nil {
		bc.Streak = streak.Count
	}

	bc.InterviewCount, err = s.interviewRepo.CountInterviewsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.EvaluateAndAward(ctx, userID, bc)
}

// Grant 直接发放，重复调用返回首次发放时间
func (s *badgeServiceImpl) Grant(ctx context.Context, userID string, badgeID string) (*dto.BadgeGrantResultDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	if strings.TrimSpace(badgeID) == "" {
		return nil, ErrMissingBadgeID
	}
	badge, err := s.badgeRepo.GetBadge(ctx, badgeID)
	if err != nil {
		return nil, err
	}
	if badge == nil {
		return nil, ErrBadgeNotFound
	}

	ub, created, err := s.badgeRepo.GrantBadge(ctx, userID, badgeID)
	if err != nil {
		return nil, err
	}
	if created {
		s.publishBadges(ctx, userID, []*dto.UserBadgeDTO{toUserBadgeDTO(ub)})
	}
	return &dto.BadgeGrantResultDTO{BadgeID: ub.BadgeID, AwardedAt: ub.AwardedAt}, nil
}

func (s *badgeServiceImpl) ListUserBadges(ctx context.Context, userID string) ([]*dto.UserBadgeDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUserID
	}
	list, err := s.badgeRepo.ListUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.UserBadgeDTO, 0, len(list))
	for _, ub := range list {
		res = append(res, toUserBadgeDTO(ub))
	}
	return res, nil
}

func (s *badgeServiceImpl) ListCatalog(ctx context.Context) ([]*dto.BadgeDTO, error) {
	list, err := s.badgeRepo.ListBadges(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.BadgeDTO, 0, len(list))
	for _, b := range list {
		res = append(res, &dto.BadgeDTO{
			ID:          b.ID,
			Name:        b.Name,
			ImageURL:    b.ImageURL,
			Description: b.Description,
		})
	}
	return res, nil
}

// publishBadges 通知是尽力而为，失败只记录日志
func (s *badgeServiceImpl) publishBadges(ctx context.Context, userID string, granted []*dto.UserBadgeDTO) {
	if len(granted) == 0 || s.publisher == nil {
		return
	}
	messages := make([]*kafka.RewardMessage, 0, len(granted))
	for _, b := range granted {
		messages = append(messages, &kafka.RewardMessage{
			Type:       consts.NotificationTypeBadge,
			UserID:     userID,
			BadgeID:    b.BadgeID,
			BadgeName:  b.Name,
			OccurredAt: b.AwardedAt,
		})
	}
	if err := s.publisher.Publish(ctx, messages...); err != nil {
		log.WarnContext(ctx, "publish badge events failed", "user_id", userID, "err", err)
	}
}

func toUserBadgeDTO(ub *model.UserBadge) *dto.UserBadgeDTO {
	d := &dto.UserBadgeDTO{
		BadgeID:     ub.BadgeID,
		Name:        ub.Badge.Name,
		ImageURL:    ub.Badge.ImageURL,
		Description: ub.Badge.Description,
		AwardedAt:   ub.AwardedAt,
	}
	if d.AwardedAt.IsZero() {
		d.AwardedAt = time.Now()
	}
	return d
}
