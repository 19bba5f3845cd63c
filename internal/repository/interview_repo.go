package repository

import (
	"InterVue/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type InterviewRepo interface {
	CreateInterview(ctx context.Context, interview *model.Interview) error
	GetInterviewByID(ctx context.Context, id string) (*model.Interview, error)
	GetInterviewsByUserID(ctx context.Context, userID string) ([]*model.Interview, error)
	GetLatestInterviews(ctx context.Context, excludeUserID string, limit int) ([]*model.Interview, error)
	CountInterviewsByUserID(ctx context.Context, userID string) (int64, error)
}

type interviewRepoImpl struct {
	db *gorm.DB
}

func NewInterviewRepo(db *gorm.DB) InterviewRepo {
	return &interviewRepoImpl{db: db}
}

func (s *interviewRepoImpl) CreateInterview(ctx context.Context, interview *model.Interview) error {
	return s.db.WithContext(ctx).Create(interview).Error
}

func (s *interviewRepoImpl) GetInterviewByID(ctx context.Context, id string) (*model.Interview, error) {
	interview := &model.Interview{}
	err := s.db.WithContext(ctx).Where("id = ?", id).First(interview).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return interview, nil
}

func (s *interviewRepoImpl) GetInterviewsByUserID(ctx context.Context, userID string) ([]*model.Interview, error) {
	list := make([]*model.Interview, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetLatestInterviews 其他用户已完成的面试，按创建时间倒序
func (s *interviewRepoImpl) GetLatestInterviews(ctx context.Context, excludeUserID string, limit int) ([]*model.Interview, error) {
	list := make([]*model.Interview, 0, limit)
	err := s.db.WithContext(ctx).
		Where("finalized = ? AND user_id <> ?", true, excludeUserID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *interviewRepoImpl) CountInterviewsByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Interview{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
