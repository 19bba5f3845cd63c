package model

import "time"

// Token 用户累计奖励余额，首次奖励时惰性创建
type Token struct {
	UserID    string `gorm:"type:varchar(36);primaryKey"`
	Amount    int64  `gorm:"not null;default:0;index:idx_amount"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index:idx_updated_at"`
}

func (Token) TableName() string {
	return "tokens"
}
