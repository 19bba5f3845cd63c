package dto

import "time"

type TokenAwardDTO struct {
	UserID string `json:"userId"`
	Amount int64  `json:"amount"`
}

type TokenBalanceDTO struct {
	Amount int64 `json:"amount"`
}

type StreakUpdateDTO struct {
	UserID    string     `json:"userId"`
	Increment bool       `json:"increment"`
	LastDate  *time.Time `json:"lastDate"`
}

type StreakDTO struct {
	Count    int        `json:"count"`
	LastDate *time.Time `json:"lastDate"`
}

type BadgeGrantDTO struct {
	UserID  string `json:"userId"`
	BadgeID string `json:"badgeId"`
}

type BadgeGrantResultDTO struct {
	BadgeID   string    `json:"badgeId"`
	AwardedAt time.Time `json:"awardedAt"`
}

type BadgeDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

type UserBadgeDTO struct {
	BadgeID     string    `json:"badgeId"`
	Name        string    `json:"name"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	AwardedAt   time.Time `json:"awardedAt"`
}

type LeaderboardEntryDTO struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RewardTriggerDTO struct {
	UserID     string `json:"userId"`
	SourceID   string `json:"sourceId"`
	RewardType string `json:"rewardType"`
}

// RewardResultDTO Complete 为 false 表示有步骤失败，可用同样参数重试
type RewardResultDTO struct {
	Replayed bool            `json:"replayed"`
	Complete bool            `json:"complete"`
	Amount   int64           `json:"amount"`
	Streak   int             `json:"streak"`
	Badges   []*UserBadgeDTO `json:"badges"`
}
