package repository

import (
	"InterVue/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaderboardRow 排行榜查询结果
type LeaderboardRow struct {
	UserID    string
	Name      string
	Amount    int64
	UpdatedAt time.Time
}

type TokenRepo interface {
	AddTokens(ctx context.Context, userID string, amount int64) (int64, error)
	GetToken(ctx context.Context, userID string) (*model.Token, error)
	GetTopTokens(ctx context.Context, since time.Time, limit int) ([]*LeaderboardRow, error)
	GetUserIDsAfter(ctx context.Context, afterID string, limit int) ([]string, error)
}

type tokenRepoImpl struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) TokenRepo {
	return &tokenRepoImpl{db: db}
}

// AddTokens 原子累加余额并返回新的总数
func (s *tokenRepoImpl) AddTokens(ctx context.Context, userID string, amount int64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		total, err = addTokens(tx, userID, amount)
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (s *tokenRepoImpl) GetToken(ctx context.Context, userID string) (*model.Token, error) {
	token := &model.Token{}
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return token, nil
}

// GetTopTokens since 之后有变动的用户按余额倒序，余额相同按 user_id 升序
func (s *tokenRepoImpl) GetTopTokens(ctx context.Context, since time.Time, limit int) ([]*LeaderboardRow, error) {
	rows := make([]*LeaderboardRow, 0, limit)
	err := s.db.WithContext(ctx).
		Table("tokens").
		Select("tokens.user_id, COALESCE(users.name, '') AS name, tokens.amount, tokens.updated_at").
		Joins("LEFT JOIN users ON users.id = tokens.user_id").
		Where("tokens.updated_at >= ?", since).
		Order("tokens.amount DESC").
		Order("tokens.user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetUserIDsAfter 按 user_id 游标分页遍历持有余额的用户
func (s *tokenRepoImpl) GetUserIDsAfter(ctx context.Context, afterID string, limit int) ([]string, error) {
	ids := make([]string, 0, limit)
	err := s.db.WithContext(ctx).
		Model(&model.Token{}).
		Where("user_id > ?", afterID).
		Order("user_id ASC").
		Limit(limit).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// addTokens 在给定事务内执行 upsert 累加，再读回当前值
func addTokens(tx *gorm.DB, userID string, amount int64) (int64, error) {
	now := time.Now()
	token := &model.Token{UserID: userID, Amount: amount, CreatedAt: now, UpdatedAt: now}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("amount + ?", amount),
			"updated_at": now,
		}),
	}).Create(token).Error
	if err != nil {
		return 0, err
	}

	var total int64
	err = tx.Model(&model.Token{}).
		Select("amount").
		Where("user_id = ?", userID).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
