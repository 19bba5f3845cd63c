package repository

import (
	"InterVue/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakRepo interface {
	RecordActivity(ctx context.Context, userID string, date time.Time, increment bool) (*model.Streak, error)
	GetStreak(ctx context.Context, userID string) (*model.Streak, error)
}

type streakRepoImpl struct {
	db *gorm.DB
}

func NewStreakRepo(db *gorm.DB) StreakRepo {
	return &streakRepoImpl{db: db}
}

func (s *streakRepoImpl) RecordActivity(ctx context.Context, userID string, date time.Time, increment bool) (*model.Streak, error) {
	var streak *model.Streak
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		streak, err = recordActivity(tx, userID, date, increment)
		return err
	})
	if err != nil {
		return nil, err
	}
	return streak, nil
}

func (s *streakRepoImpl) GetStreak(ctx context.Context, userID string) (*model.Streak, error) {
	streak := &model.Streak{}
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(streak).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return streak, nil
}

// recordActivity 新用户从 1 开始；已有记录按 increment 递增或清零，并覆盖 last_date
func recordActivity(tx *gorm.DB, userID string, date time.Time, increment bool) (*model.Streak, error) {
	countExpr := gorm.Expr("0")
	if increment {
		countExpr = gorm.Expr("`count` + 1")
	}

	streak := &model.Streak{UserID: userID, Count: 1, LastDate: &date}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      countExpr,
			"last_date":  date,
			"updated_at": time.Now(),
		}),
	}).Create(streak).Error
	if err != nil {
		return nil, err
	}

	result := &model.Streak{}
	if err = tx.Where("user_id = ?", userID).First(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}
