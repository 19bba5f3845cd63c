package model

import "time"

const (
	RewardTypeInterviewFeedback = "interview_feedback"
	RewardTypeQuizCompletion    = "quiz_completion"
)

// RewardEvent 奖励幂等账本，每个步骤完成后置位对应标记
type RewardEvent struct {
	ID              uint64 `gorm:"primaryKey"`
	UserID          string `gorm:"type:varchar(36);not null;uniqueIndex:idx_reward_key,priority:1"`
	SourceID        string `gorm:"type:varchar(64);not null;uniqueIndex:idx_reward_key,priority:2"`
	RewardType      string `gorm:"type:varchar(32);not null;uniqueIndex:idx_reward_key,priority:3"`
	Amount          int64  `gorm:"not null"`
	TokensApplied   bool   `gorm:"not null;default:false"`
	StreakApplied   bool   `gorm:"not null;default:false"`
	BadgesEvaluated bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (RewardEvent) TableName() string {
	return "reward_events"
}
