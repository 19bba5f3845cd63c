package repository

import (
	"InterVue/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepo interface {
	GetBadge(ctx context.Context, id string) (*model.Badge, error)
	ListBadges(ctx context.Context) ([]*model.Badge, error)
	ListUserBadges(ctx context.Context, userID string) ([]*model.UserBadge, error)
	GetUserBadgeIDs(ctx context.Context, userID string) ([]string, error)
	GrantBadge(ctx context.Context, userID string, badgeID string) (*model.UserBadge, bool, error)
}

type badgeRepoImpl struct {
	db *gorm.DB
}

func NewBadgeRepo(db *gorm.DB) BadgeRepo {
	return &badgeRepoImpl{db: db}
}

func (s *badgeRepoImpl) GetBadge(ctx context.Context, id string) (*model.Badge, error) {
	badge := &model.Badge{}
	err := s.db.WithContext(ctx).Where("id = ?", id).First(badge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return badge, nil
}

func (s *badgeRepoImpl) ListBadges(ctx context.Context) ([]*model.Badge, error) {
	badges := make([]*model.Badge, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&badges).Error; err != nil {
		return nil, err
	}
	return badges, nil
}

func (s *badgeRepoImpl) ListUserBadges(ctx context.Context, userID string) ([]*model.UserBadge, error) {
	list := make([]*model.UserBadge, 0)
	err := s.db.WithContext(ctx).
		Preload("Badge").
		Where("user_id = ?", userID).
		Order("awarded_at ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *badgeRepoImpl) GetUserBadgeIDs(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&model.UserBadge{}).
		Where("user_id = ?", userID).
		Pluck("badge_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GrantBadge 不存在才插入，返回库中的记录以及本次是否新建
func (s *badgeRepoImpl) GrantBadge(ctx context.Context, userID string, badgeID string) (*model.UserBadge, bool, error) {
	db := s.db.WithContext(ctx)

	userBadge := &model.UserBadge{UserID: userID, BadgeID: badgeID}
	result := db.Omit("Badge").Clauses(clause.OnConflict{DoNothing: true}).Create(userBadge)
	if result.Error != nil && !isDuplicateKey(result.Error) {
		return nil, false, result.Error
	}
	created := result.Error == nil && result.RowsAffected == 1

	stored := &model.UserBadge{}
	err := db.Preload("Badge").
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		First(stored).Error
	if err != nil {
		return nil, false, err
	}
	return stored, created, nil
}
