package repository

import (
	"InterVue/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	RewardStepStreak = "streak_applied"
	RewardStepBadges = "badges_evaluated"
)

type RewardRepo interface {
	ClaimEvent(ctx context.Context, event *model.RewardEvent) (*model.RewardEvent, error)
	ApplyTokens(ctx context.Context, eventID uint64, userID string, amount int64) (int64, bool, error)
	ApplyStreak(ctx context.Context, eventID uint64, userID string, date time.Time, increment bool) (*model.Streak, bool, error)
	MarkStep(ctx context.Context, eventID uint64, step string) error
}

type rewardRepoImpl struct {
	db *gorm.DB
}

func NewRewardRepo(db *gorm.DB) RewardRepo {
	return &rewardRepoImpl{db: db}
}

// ClaimEvent 按 (user_id, source_id, reward_type) 插入事件，已存在则返回已有记录
func (s *rewardRepoImpl) ClaimEvent(ctx context.Context, event *model.RewardEvent) (*model.RewardEvent, error) {
	db := s.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(event).Error
	if err != nil && !isDuplicateKey(err) {
		return nil, err
	}

	stored := &model.RewardEvent{}
	err = db.Where("user_id = ? AND source_id = ? AND reward_type = ?", event.UserID, event.SourceID, event.RewardType).
		First(stored).Error
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ApplyTokens 标记与累加在同一事务中，重复调用不会重复发放
func (s *rewardRepoImpl) ApplyTokens(ctx context.Context, eventID uint64, userID string, amount int64) (int64, bool, error) {
	var total int64
	var applied bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimed, err := claimStep(tx, eventID, "tokens_applied")
		if err != nil {
			return err
		}
		if !claimed {
			return tx.Model(&model.Token{}).
				Select("COALESCE(SUM(amount), 0)").
				Where("user_id = ?", userID).
				Scan(&total).Error
		}
		applied = true
		total, err = addTokens(tx, userID, amount)
		return err
	})
	if err != nil {
		return 0, false, err
	}
	return total, applied, nil
}

func (s *rewardRepoImpl) ApplyStreak(ctx context.Context, eventID uint64, userID string, date time.Time, increment bool) (*model.Streak, bool, error) {
	var streak *model.Streak
	var applied bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claimed, err := claimStep(tx, eventID, RewardStepStreak)
		if err != nil {
			return err
		}
		if !claimed {
			current := &model.Streak{UserID: userID}
			if err = tx.Where("user_id = ?", userID).Limit(1).Find(current).Error; err != nil {
				return err
			}
			streak = current
			return nil
		}
		applied = true
		streak, err = recordActivity(tx, userID, date, increment)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return streak, applied, nil
}

func (s *rewardRepoImpl) MarkStep(ctx context.Context, eventID uint64, step string) error {
	_, err := claimStep(s.db.WithContext(ctx), eventID, step)
	return err
}

// claimStep 把步骤标记从 false 翻转为 true，成功翻转才算取得执行权
func claimStep(tx *gorm.DB, eventID uint64, column string) (bool, error) {
	result := tx.Model(&model.RewardEvent{}).
		Where("id = ?", eventID).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: false}).
		Updates(map[string]interface{}{column: true, "updated_at": time.Now()})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
