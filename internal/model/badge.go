package model

import "time"

const (
	BadgeFirstInterview = "badge_first_interview"
	Badge10Tokens       = "badge_10_tokens"
	Badge50Tokens       = "badge_50_tokens"
	Badge7DayStreak     = "badge_7_day_streak"
)

// Badge 徽章目录，只读参考数据
type Badge struct {
	ID          string `gorm:"type:varchar(64);primaryKey"`
	Name        string `gorm:"type:varchar(100);not null"`
	ImageURL    string `gorm:"type:varchar(512)"`
	Description string `gorm:"type:varchar(512)"`
}

func (Badge) TableName() string {
	return "badges"
}

// UserBadge (user_id, badge_id) 联合主键保证同一徽章只发放一次
type UserBadge struct {
	UserID    string    `gorm:"type:varchar(36);primaryKey"`
	BadgeID   string    `gorm:"type:varchar(64);primaryKey;index:idx_badge_id"`
	AwardedAt time.Time `gorm:"autoCreateTime"`

	Badge Badge `gorm:"foreignKey:BadgeID;references:ID"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}

// DefaultBadges 启动时写入的徽章目录
func DefaultBadges() []Badge {
	return []Badge{
		{
			ID:          BadgeFirstInterview,
			Name:        "First Interview",
			ImageURL:    "/badges/first-interview.svg",
			Description: "Completed your first mock interview and earned 10 tokens.",
		},
		{
			ID:          Badge10Tokens,
			Name:        "10 Tokens",
			ImageURL:    "/badges/10-tokens.svg",
			Description: "Collected 10 tokens.",
		},
		{
			ID:          Badge50Tokens,
			Name:        "50 Tokens",
			ImageURL:    "/badges/50-tokens.svg",
			Description: "Collected 50 tokens.",
		},
		{
			ID:          Badge7DayStreak,
			Name:        "7 Day Streak",
			ImageURL:    "/badges/7-day-streak.svg",
			Description: "Practiced seven days in a row.",
		},
	}
}
